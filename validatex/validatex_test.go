package validatex_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/wsapix/errx"
	"github.com/Abraxas-365/wsapix/validatex"
)

type gateway struct {
	BaseURL string `yaml:"baseUrl" validate:"required,url"`
	APIKey  string `yaml:"apiKey" validate:"required"`
}

type settings struct {
	Gateway gateway `yaml:"gateway"`
	Driver  string  `json:"driver" validate:"oneof=memory redis"`
}

type withCheck struct {
	A int `validate:"min=1"`
	B int
}

func (w withCheck) Validate() error {
	if w.B < w.A {
		return errors.New("b must not be below a")
	}
	return nil
}

func TestStructReportsFieldPaths(t *testing.T) {
	err := validatex.Struct(settings{Gateway: gateway{BaseURL: "not a url"}, Driver: "disk"})

	require.Error(t, err)
	e, ok := errx.As(err)
	require.True(t, ok)
	assert.Equal(t, validatex.ErrInvalid, e.Code)
	assert.Equal(t, errx.TypeValidation, e.Type)
	assert.Equal(t, "url", e.Details["gateway.baseUrl"])
	assert.Equal(t, "required", e.Details["gateway.apiKey"])
	assert.Equal(t, "oneof=memory redis", e.Details["driver"])
}

func TestStructPasses(t *testing.T) {
	err := validatex.Struct(settings{Gateway: gateway{BaseURL: "https://api.wsapi.chat", APIKey: "k"}, Driver: "redis"})

	assert.NoError(t, err)
}

func TestValidatableRunsAfterTags(t *testing.T) {
	err := validatex.Struct(withCheck{A: 2, B: 1})

	require.Error(t, err)
	assert.True(t, errx.IsCode(err, validatex.ErrInvalid))
	assert.Contains(t, err.Error(), "b must not be below a")

	assert.NoError(t, validatex.Struct(withCheck{A: 1, B: 1}))
}

func TestVar(t *testing.T) {
	assert.NoError(t, validatex.Var("receiptType", "read", "oneof=delivered sender read played"))

	err := validatex.Var("receiptType", "seen", "oneof=delivered sender read played")
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, validatex.ErrInvalid))
}

func TestRegisterRule(t *testing.T) {
	require.NoError(t, validatex.RegisterRule("lowercase_only", func(v string) bool {
		return v == "" || v[0] >= 'a' && v[0] <= 'z'
	}))

	type s struct {
		Name string `validate:"lowercase_only"`
	}
	assert.NoError(t, validatex.Struct(s{Name: "abc"}))
	assert.Error(t, validatex.Struct(s{Name: "Abc"}))
}
