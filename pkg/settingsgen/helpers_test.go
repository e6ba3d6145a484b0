package settingsgen

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gsgen/pkg/logger"
	"gsgen/pkg/schemas"
)

const sampleSchema = "../../testdata/io.example.test.gschema.xml"

func loadSample(t *testing.T) *schemas.SchemaList {
	t.Helper()
	list, err := schemas.FromXMLFile(sampleSchema)
	require.NoError(t, err)
	return list
}

func loadXML(t *testing.T, doc string) *schemas.SchemaList {
	t.Helper()
	list, err := schemas.FromXML(strings.NewReader(doc))
	require.NoError(t, err)
	return list
}

func testContext(t *testing.T) context.Context {
	return logger.ContextWithLogger(t.Context(), logger.Discard())
}

// accessor returns the accessor generated for key, or nil.
func accessor(unit *Unit, key string) *Accessor {
	for _, a := range unit.Accessors {
		if a.Key == key {
			return a
		}
	}
	return nil
}

func keys(unit *Unit) []string {
	var names []string
	for _, a := range unit.Accessors {
		names = append(names, a.Key)
	}
	return names
}
