package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSchemaRendering(t *testing.T) {
	s := Object(
		Prop("title", String()),
		Prop("remote", Boolean()),
		Prop("tags", ArrayOf(String())),
	).WithRequired("title")

	doc := s.JSONSchema()
	assert.Equal(t, "http://json-schema.org/draft-07/schema#", doc["$schema"])
	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, []string{"title"}, doc["required"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)

	title := props["title"].(map[string]any)
	assert.Equal(t, "string", title["type"])
	assert.Equal(t, 1, title["minLength"])

	remote := props["remote"].(map[string]any)
	assert.Equal(t, []string{"boolean", "null"}, remote["type"])

	tags := props["tags"].(map[string]any)
	assert.Equal(t, []string{"array", "null"}, tags["type"])
	assert.Equal(t, map[string]any{"type": "string"}, tags["items"])
}

func TestPropertyNamesKeepOrder(t *testing.T) {
	s := Object(Prop("b", String()), Prop("a", String()), Prop("c", String()))
	assert.Equal(t, []string{"b", "a", "c"}, s.PropertyNames())
}

func TestGeneratorFunc(t *testing.T) {
	var got *Request
	g := GeneratorFunc(func(_ context.Context, req *Request) (string, error) {
		got = req
		return "ok", nil
	})

	req := &Request{Prompt: "hi", Temperature: Temperature(0.4)}
	out, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Same(t, req, got)
	assert.False(t, req.Structured())
	assert.InDelta(t, 0.4, *req.Temperature, 1e-6)
}
