package javascript

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/syntax"
)

const sampleSource = `/* eslint-disable no-unused-vars */
/**
 * @class Example
 */
const Example = class Example {};

/**
 * Example Project
 * @application example
 */
module.exports = {
  /**
   * Example Module
   * @module example
   * @path /example
   */
  ThirdPartyConsultant: {
    /**
     * Get Example Info
     * @route {get} /info
     */
    async getInfo(params, context) {},
  },
};
`

func TestFrontend_Parse(t *testing.T) {
	file, err := New().Parse(context.Background(), "sample/index.js", []byte(sampleSource))
	require.NoError(t, err)

	assert.Equal(t, "sample/index.js", file.Path)
	assert.Equal(t, "program", file.Root.Type)
	require.NotEmpty(t, file.Tokens)
	assert.Equal(t, syntax.BlockComment, file.Tokens[0].Kind)
	assert.Equal(t, "/* eslint-disable no-unused-vars */", file.Tokens[0].Text)

	for i := 1; i < len(file.Tokens); i++ {
		assert.LessOrEqual(t, file.Tokens[i-1].End.Offset, file.Tokens[i].Start.Offset)
	}
}

func TestFrontend_Bindings(t *testing.T) {
	file, err := New().Parse(context.Background(), "index.js", []byte(sampleSource))
	require.NoError(t, err)

	bindings := syntax.Bind(file)
	require.Len(t, bindings, 4)

	assert.Contains(t, bindings[0].Comment.Text, "@class Example")
	assert.Equal(t, "lexical_declaration", bindings[0].Node.Type)

	assert.Contains(t, bindings[1].Comment.Text, "@application example")
	assert.Equal(t, "expression_statement", bindings[1].Node.Type)

	assert.Contains(t, bindings[2].Comment.Text, "@module example")
	assert.Equal(t, syntax.PropertyNode, bindings[2].Node.Kind)
	assert.Equal(t, "ThirdPartyConsultant", bindings[2].Node.Name)

	assert.Contains(t, bindings[3].Comment.Text, "@route {get} /info")
	assert.Equal(t, syntax.MethodNode, bindings[3].Node.Kind)
	assert.Equal(t, "getInfo", syntax.DeclarationName(bindings[3].Node))

	assert.True(t, syntax.Contains(bindings[2].Node, bindings[3].Node))
	assert.False(t, syntax.Contains(bindings[3].Node, bindings[2].Node))
}

func TestFrontend_DeclarationNames(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"function declaration", "/** doc */\nfunction list() {}", "list"},
		{"generator declaration", "/** doc */\nfunction* stream() {}", "stream"},
		{"arrow variable", "/** doc */\nconst create = async () => {};", "create"},
		{"function expression variable", "/** doc */\nvar remove = function () {};", "remove"},
		{"plain variable", "/** doc */\nconst limit = 10;", ""},
		{"class method", "class A {\n  /** doc */\n  update() {}\n}", "update"},
		{"property", "x = {\n  /** doc */\n  show: function () {},\n};", "show"},
		{"string keyed property", "x = {\n  /** doc */\n  'show': function () {},\n};", ""},
		{"shorthand property", "x = {\n  /** doc */\n  show,\n};", "show"},
		{"anonymous default export", "/** doc */\nexport default function () {}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := New().Parse(context.Background(), "test.js", []byte(tt.source))
			require.NoError(t, err)

			bindings := syntax.Bind(file)
			require.Len(t, bindings, 1)
			assert.Equal(t, tt.want, syntax.DeclarationName(bindings[0].Node))
		})
	}
}

func TestFrontend_CommentDistance(t *testing.T) {
	source := "/** far */\n\nfunction a() {}\n/* plain */\nfunction b() {}\n/** near */ function c() {}"

	file, err := New().Parse(context.Background(), "test.js", []byte(source))
	require.NoError(t, err)

	bindings := syntax.Bind(file)
	require.Len(t, bindings, 1)
	assert.Equal(t, "/** near */", bindings[0].Comment.Text)
	assert.Equal(t, "c", syntax.DeclarationName(bindings[0].Node))
}

func TestFrontend_SyntaxError(t *testing.T) {
	_, err := New().Parse(context.Background(), "broken.js", []byte("const a = {\n  b: function( {\n};\n"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.SourceParseErrorCode))
	assert.Contains(t, err.Error(), "broken.js")
}

func TestFrontend_Extensions(t *testing.T) {
	f := New()
	assert.Equal(t, "javascript", f.Name())
	assert.ElementsMatch(t, []string{".js", ".mjs", ".cjs", ".jsx"}, f.Extensions())
}
