// Package schema defines the abstract data-model document (objects with
// typed attributes, and closed enumerations) and the loader that parses it
// from a markdown file.
//
// Document grammar:
//
//	---
//	name: My Model        # optional YAML front matter
//	---
//	# My Model            # model name (front matter is the fallback)
//
//	### Person            # one section per object or enum
//	- __name__            # bold marks a required attribute
//	  - Type: string
//	- age
//	  - Type: integer
//	- tags
//	  - Type: string[]    # [] suffix (or "Multiple: true") marks an array
//	- address
//	  - Type: Address     # unrecognized types are forward references
//
//	### Color             # a section of KEY = value items is an enum
//	- RED = #ff0000
//	- GREEN = #00ff00
//
// The loaded Model is an immutable value: it is constructed once here and
// only read by the compiler.
package schema
