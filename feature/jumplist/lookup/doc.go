// Package lookup provides the reference tables used to describe values found
// in jump lists: application descriptions by AppID, network card vendors by
// MAC prefix and property descriptions by property key.
//
// Built-in tables are embedded YAML. AppID and vendor tables can be extended
// at run time from plain text files.
package lookup
