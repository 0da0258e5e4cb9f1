package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerInfoBasic(t *testing.T) {
	require.NotNil(t, SwaggerInfo)
	assert.NotEmpty(t, SwaggerInfo.Title)
	assert.Contains(t, SwaggerInfo.SwaggerTemplate, "paths")
}

func TestSwaggerDocRenders(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	for _, p := range []string{"/census", "/specialties", "/patient", "/patient/{mrn}", "/patient/{mrn}/notes", "/notes/{id}", "/visit/{id}/discharge"} {
		assert.Contains(t, doc.Paths, p)
	}
	assert.Contains(t, doc.Paths["/patient/{mrn}/notes"], "post")
}
