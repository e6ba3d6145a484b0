package schemas

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/thorn-jmh/errorst"
)

// FromXMLFile reads a gschema XML file and returns its schema list.
func FromXMLFile(filePath string) (*SchemaList, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errorst.Wrap(err, "failed to open file %s", filePath)
	}

	defer func() {
		_ = f.Close()
	}()

	list, err := FromXML(f)
	if err != nil {
		return nil, errorst.Wrap(err, "failed to read schema file %s", filePath)
	}
	return list, nil
}

// FromXML reads a gschema document and returns its schema list.
func FromXML(r io.Reader) (*SchemaList, error) {
	var list SchemaList
	if err := xml.NewDecoder(r).Decode(&list); err != nil {
		return nil, errorst.Wrap(err, "failed to unmarshal XML")
	}

	if err := list.normalize(); err != nil {
		return nil, err
	}

	return &list, nil
}
