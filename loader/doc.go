// Package loader builds a pattern.Repository from a declarative pattern
// document.
//
// Document layout (YAML, or JSON which parses as YAML):
//
//	images_folder: tiles/
//	patterns:
//	  - id: 1
//	    name: sea
//	    weight: 4
//	    tags: [water]
//	    variants:
//	      - {image_path: sea_a.png, weight: 1}
//	    rules:
//	      up:    [water, 2]
//	      down:  [water, 2]
//	      left:  [water, 2]
//	      right: [water, 2]
//
// Rule entries are integers (a group id) or strings: "ALL" is every group,
// anything else a tag. A group's variant list may also be spelled
// "patterns" for documents written for the older exporter.
//
// Build runs the two-phase construction of package pattern: every group
// identity is created and registered first, then each rule list is resolved
// and attached, then symmetry is checked. A failed symmetry check is logged
// and reported; WithStrict(true) turns it into ErrInconsistentRules.
package loader
