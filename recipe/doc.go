// Package recipe loads production networks from declarative files and turns
// them into a core.Graph[string] plus solver targets.
//
// Two formats are accepted, chosen by file extension.
//
// HCL (.hcl):
//
//	variable "networks" { default = 2 }
//
//	resource "iron_ingot" {
//	  rate = 30
//	  input "iron_ore" { rate = 30 }
//	}
//
//	target "versatile_framework" { rate = var.networks }
//
// YAML (.yaml, .yml):
//
//	resources:
//	  - name: iron_ingot
//	    rate: 30
//	    inputs:
//	      - {resource: iron_ore, rate: 30}
//	targets:
//	  versatile_framework: var.networks
//	variables:
//	  networks: 2
//
// A resource's rate is its output per production unit; an input's rate is how
// much of that input one production unit consumes. Variables supplied by the
// caller override file defaults.
package recipe
