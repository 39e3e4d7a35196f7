// Package hcl implements the config.Loader interface for HCL scene
// files.
//
// A scene file declares resources as labeled blocks:
//
//	resource "textfile.TextFile" "readme" {
//	  arguments {
//	    filename = "README.txt"
//	  }
//	}
//
// The loader finds every .hcl file under the configured paths, parses
// them, evaluates each argument attribute into a cty value, and
// translates the result into the format-agnostic config.Scene model.
package hcl
