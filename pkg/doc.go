// Package pkg provides the libraries behind reqdetect.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. [requirement] - Parsing and formatting of single requirement lines
//  2. [manifest] - Line-by-line scanning of manifest content from an io.Reader
//  3. [errors] - Coded errors shared by both, plus input validation
//
// # Architecture
//
//	raw line
//	    ↓
//	[requirement.StripComment] → [requirement.CutEditable]
//	    ↓
//	classifier: path / URL / VCS → *Location, otherwise → *Named
//	    ↓
//	[requirement.Format] (canonical pip form, on demand)
//
// # Quick Start
//
//	req, err := requirement.Parse("tablib[xml, html] ~= 1.0")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(req) // tablib[html,xml]~=1.0
package pkg
