// Package config loads pipeline diagram configuration from TOML or HCL files.
//
// Every key is optional. Omitted keys keep the values of the built-in
// [pipeline.StaticWebsite] definition, so an empty file renders the default
// diagram. Stages, when given, replace the built-in stages as a whole.
//
// TOML:
//
//	title     = "Static Website"
//	direction = "TB"
//	format    = "svg"
//	output    = "site.svg"
//
//	[graph_attr]
//	bgcolor = "white"
//
//	[[stage]]
//	label    = "Repository"
//	category = "vcs"
//	meta     = { provider = "GitHub" }
//
// HCL:
//
//	title      = "Static Website"
//	direction  = "TB"
//	graph_attr = { bgcolor = "white" }
//
//	stage "Repository" {
//	  category = "vcs"
//	  meta     = { provider = "GitHub" }
//	}
package config
