package app

import (
	"github.com/vk/assetcore/internal/resource"
	"github.com/vk/assetcore/modules/textfile"
)

// coreModules is the definitive list of all resource modules that are
// compiled into the assetcore binary.
var coreModules = []resource.Module{
	&textfile.Module{},
}
