// Package testsettings holds the accessors generated for the sample schema
// in testdata. The tests of this package exercise generated code against
// the in-memory store.
package testsettings

//go:generate go run gsgen generate --config ../../testdata/gsgen.yaml --schema ../../testdata/io.example.test.gschema.xml --output settings_gen.go
