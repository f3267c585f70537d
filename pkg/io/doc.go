// Package io provides JSON import and export for diagram graphs.
//
// # JSON Format
//
//	{
//	  "meta": {"title": "", "direction": "LR"},
//	  "nodes": [
//	    {"id": "Repository", "row": 0, "category": "vcs", "icon": "onprem/vcs/github"},
//	    {"id": "Static Website", "row": 1, "category": "storage", "meta": {"bucket": "site"}}
//	  ],
//	  "edges": [
//	    {"from": "Repository", "to": "Static Website"}
//	  ]
//	}
//
// Nodes and edges are written in insertion order, so exporting the same graph
// twice yields identical bytes.
//
// Use [WriteJSON] or [ExportJSON] to write a graph and [ReadJSON] or
// [ImportJSON] to read one back. Reading validates row numbering and rejects
// cycles.
package io
