package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signUpRules() Rules {
	return Rules{
		FieldEmail:           {Required: true, Email: true},
		FieldPassword:        {Required: true, MinLength: 6},
		FieldConfirmPassword: {Required: true, Match: FieldPassword},
	}
}

func emptyValues() map[Field]string {
	return map[Field]string{FieldEmail: "", FieldPassword: "", FieldConfirmPassword: ""}
}

func TestForm_HandleChangeStoresRawValue(t *testing.T) {
	f := New(emptyValues(), signUpRules())

	f.HandleChange(FieldEmail, "  marc@example.com  ")
	// 不做 trim，原样保存
	assert.Equal(t, "  marc@example.com  ", f.Value(FieldEmail))
}

func TestForm_ChangeClearsErrorOptimistically(t *testing.T) {
	f := New(emptyValues(), signUpRules())

	f.HandleBlur(FieldEmail)
	require.Equal(t, "Email is required", f.Err(FieldEmail))

	// 一旦开始输入，错误立即消失，即便新值仍然非法
	f.HandleChange(FieldEmail, "x")
	assert.Equal(t, "", f.Err(FieldEmail))

	// 下一次 blur 重新校验
	f.HandleBlur(FieldEmail)
	assert.Equal(t, "Please enter a valid email address", f.Err(FieldEmail))
}

func TestForm_RevalidateOnChangePolicy(t *testing.T) {
	f := New(emptyValues(), signUpRules(), WithClearPolicy(RevalidateOnChange))

	f.HandleChange(FieldEmail, "x")
	assert.Equal(t, "Please enter a valid email address", f.Err(FieldEmail))

	f.HandleChange(FieldEmail, "a@b.co")
	assert.Equal(t, "", f.Err(FieldEmail))
}

func TestForm_HandleBlurMarksTouched(t *testing.T) {
	f := New(emptyValues(), signUpRules())

	assert.False(t, f.Touched(FieldPassword))
	f.HandleChange(FieldPassword, "abcdef")
	assert.False(t, f.Touched(FieldPassword), "change alone does not touch")

	f.HandleBlur(FieldPassword)
	assert.True(t, f.Touched(FieldPassword))
	assert.Equal(t, "", f.Err(FieldPassword))
}

func TestForm_ValidateForm(t *testing.T) {
	f := New(emptyValues(), signUpRules())

	f.HandleChange(FieldEmail, "marc@example.com")
	f.HandleChange(FieldPassword, "abcdef")
	f.HandleChange(FieldConfirmPassword, "abcxyz")

	assert.False(t, f.ValidateForm())
	assert.Equal(t, "Passwords do not match", f.Err(FieldConfirmPassword))
	assert.Equal(t, "", f.Err(FieldPassword))
	assert.Equal(t, "", f.Err(FieldEmail))

	// validateForm 不会标记 touched
	assert.False(t, f.Touched(FieldConfirmPassword))

	f.HandleChange(FieldConfirmPassword, "abcdef")
	assert.True(t, f.ValidateForm())
	assert.False(t, f.HasErrors())
}

func TestForm_ValidateFormReplacesErrorsWholesale(t *testing.T) {
	f := New(emptyValues(), signUpRules())

	f.HandleBlur(FieldEmail)
	require.NotEmpty(t, f.Err(FieldEmail))

	f.HandleChange(FieldEmail, "a@b.co")
	f.HandleChange(FieldPassword, "abcdef")
	f.HandleChange(FieldConfirmPassword, "abcdef")

	assert.True(t, f.ValidateForm())
	assert.Equal(t, "", f.Err(FieldEmail))
}

func TestForm_StaleMatchErrorNotReevaluated(t *testing.T) {
	// match 规则只在依赖字段自身的 blur/submit 时重算：先让确认密码通过,
	// 再改动密码字段，确认密码不会自动变为错误。
	f := New(emptyValues(), signUpRules())

	f.HandleChange(FieldPassword, "abcdef")
	f.HandleChange(FieldConfirmPassword, "abcdef")
	f.HandleBlur(FieldConfirmPassword)
	require.Equal(t, "", f.Err(FieldConfirmPassword))

	f.HandleChange(FieldPassword, "changed")
	assert.Equal(t, "", f.Err(FieldConfirmPassword), "stale result stays until next blur/submit")

	f.HandleBlur(FieldConfirmPassword)
	assert.Equal(t, "Passwords do not match", f.Err(FieldConfirmPassword))
}

func TestForm_Reset(t *testing.T) {
	initial := map[Field]string{FieldEmail: "seed@example.com", FieldPassword: ""}
	f := New(initial, signUpRules())

	f.HandleChange(FieldEmail, "other@example.com")
	f.HandleBlur(FieldPassword)
	require.True(t, f.HasErrors())

	f.Reset()
	assert.Equal(t, "seed@example.com", f.Value(FieldEmail))
	assert.False(t, f.HasErrors())
	assert.False(t, f.Touched(FieldPassword))

	// reset 幂等
	before := f.Values()
	f.Reset()
	assert.Equal(t, before, f.Values())
}

func TestForm_ResetUnaffectedByInitialMutation(t *testing.T) {
	initial := map[Field]string{FieldEmail: "seed@example.com"}
	f := New(initial, signUpRules())

	initial[FieldEmail] = "mutated@example.com"
	f.Reset()
	assert.Equal(t, "seed@example.com", f.Value(FieldEmail))
}

func TestStrength(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		wantLevel int
		wantLabel string
	}{
		{name: "空密码", password: "", wantLevel: 0, wantLabel: "Weak"},
		{name: "短且单一", password: "abc", wantLevel: 1, wantLabel: "Weak"},
		{name: "八位字母数字", password: "abcdef12", wantLevel: 3, wantLabel: "Fair"},
		{name: "大小写数字", password: "Abcdef12", wantLevel: 4, wantLabel: "Good"},
		{name: "十二位全类别", password: "Abcdef12!@#$", wantLevel: 4, wantLabel: "Strong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strength(tt.password)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantLabel, got.Label)
		})
	}
}
