// Package gsettings is the runtime used by code generated with gsgen.
//
// It models a GSettings backend: schemas compiled from gschema files into a
// Source, a Store holding user values, and Settings handles that generated
// accessor types embed. Values travel as Variants; Get, Set and friends
// convert them to and from Go values.
package gsettings
