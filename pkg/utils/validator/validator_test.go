package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signUpPayload struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password,nowhitespace"`
	FirstName string `json:"first_name" validate:"required,min=1,max=64"`
	LastName  string `json:"last_name" validate:"required,min=1,max=64"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		payload   signUpPayload
		wantField string
	}{
		{
			name:    "合法请求",
			payload: signUpPayload{Email: "marc@example.com", Password: "abcdef12", FirstName: "Marc", LastName: "Demo"},
		},
		{
			name:      "邮箱格式错误",
			payload:   signUpPayload{Email: "not-an-email", Password: "abcdef12", FirstName: "Marc", LastName: "Demo"},
			wantField: "email",
		},
		{
			name:      "密码缺少数字",
			payload:   signUpPayload{Email: "marc@example.com", Password: "abcdefgh", FirstName: "Marc", LastName: "Demo"},
			wantField: "password",
		},
		{
			name:      "密码包含空格",
			payload:   signUpPayload{Email: "marc@example.com", Password: "abcdef 12", FirstName: "Marc", LastName: "Demo"},
			wantField: "password",
		},
		{
			name:      "缺少姓氏",
			payload:   signUpPayload{Email: "marc@example.com", Password: "abcdef12", FirstName: "Marc"},
			wantField: "last_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Struct(tt.payload)
			if tt.wantField == "" {
				assert.False(t, errs.HasErrors())
				return
			}

			assert.True(t, errs.HasErrors())
			assert.NotEmpty(t, errs.ForField(tt.wantField))
			assert.NotEmpty(t, errs.First())
		})
	}
}

func TestGlobal_Singleton(t *testing.T) {
	assert.Same(t, Global(), Global())
}
