package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swaggo/swag"
)

func TestSwaggerDocRegistered(t *testing.T) {
	doc, err := swag.ReadDoc()
	assert.NoError(t, err)

	var spec map[string]any
	assert.NoError(t, json.Unmarshal([]byte(doc), &spec))

	info, ok := spec["info"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "SkillHubNext API", info["title"])
	assert.Equal(t, "/api/v1", spec["basePath"])

	paths, ok := spec["paths"].(map[string]any)
	assert.True(t, ok)
	assert.Contains(t, paths, "/subscription/check")
	assert.Contains(t, paths, "/jobs")
}
