package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticktock/validation"
)

func validEntry() validation.EntryValues {
	return validation.EntryValues{
		Date:        "2024-01-15",
		ProjectName: "Mobile App",
		TypeOfWork:  "Testing",
		Description: "Wrote integration tests",
		Hours:       "4",
	}
}

func TestEntryFormEmptySubmit(t *testing.T) {
	form := validation.NewEntryForm(validation.EntryValues{})
	assert.Empty(t, form.Messages(), "pristine form shows nothing")

	errs, ok := form.Submit()
	require.False(t, ok)
	assert.Equal(t, validation.MsgDateRequired, errs[validation.FieldDate])
	assert.Equal(t, validation.MsgProjectRequired, errs[validation.FieldProject])
	assert.Equal(t, validation.MsgWorkTypeRequired, errs[validation.FieldWorkType])
	assert.Equal(t, validation.MsgDescriptionTooShort, errs[validation.FieldDescription])
	assert.NotContains(t, errs, validation.FieldHours, "new form starts at one hour")
}

func TestEntryFormShortDescription(t *testing.T) {
	v := validEntry()
	v.Description = "abc"
	form := validation.NewEntryForm(v)

	errs, ok := form.Submit()
	assert.False(t, ok)
	assert.Equal(t, validation.Errors{validation.FieldDescription: validation.MsgDescriptionTooShort}, errs)
}

func TestEntryFormHoursTooHigh(t *testing.T) {
	form := validation.NewEntryForm(validEntry())
	form.Hours.Change("25")

	errs, ok := form.Submit()
	assert.False(t, ok)
	assert.Equal(t, validation.Errors{validation.FieldHours: validation.MsgHoursOutOfRange}, errs)
}

func TestEntryFormValid(t *testing.T) {
	form := validation.NewEntryForm(validEntry())
	errs, ok := form.Submit()
	assert.True(t, ok)
	assert.Empty(t, errs)
	assert.Equal(t, validEntry(), form.Values())
}

func TestEntryFormSubmitsDespiteStaleServerError(t *testing.T) {
	form := validation.NewEntryForm(validEntry())
	form.Description.SetExternalError("server rejected")

	errs, ok := form.Submit()
	assert.True(t, ok)
	assert.Equal(t, "server rejected", errs[validation.FieldDescription], "still displayed")

	form.Description.Change("Wrote more integration tests")
	errs, ok = form.Submit()
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestLoginFormSubmitsDespiteStaleServerError(t *testing.T) {
	form := validation.NewLoginForm(validation.LoginValues{Email: "john.doe@example.com", Password: "password123"}, false)
	form.Password.SetExternalError("Invalid credentials")

	_, ok := form.Submit()
	assert.True(t, ok)
}

func TestEntryFormTouchedFieldOnly(t *testing.T) {
	form := validation.NewEntryForm(validation.EntryValues{})
	form.Description.Change("ab")

	assert.Equal(t, validation.Errors{validation.FieldDescription: validation.MsgDescriptionTooShort}, form.Messages())
}

func TestEntryFormStepper(t *testing.T) {
	form := validation.NewEntryForm(validation.EntryValues{})
	assert.Equal(t, "1", form.Hours.Value())

	form.IncrementHours()
	assert.Equal(t, "2", form.Hours.Value())

	form.DecrementHours()
	assert.Equal(t, "1", form.Hours.Value())
}

func TestStepperBounds(t *testing.T) {
	tests := []struct {
		in       string
		inc, dec string
	}{
		{"1", "2", "0.5"},
		{"2", "3", "1"},
		{"0.5", "1.5", "0.5"},
		{"23.5", "24", "22.5"},
		{"24", "24", "23"},
		{"", "1", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.inc, validation.Increment(tt.in), "increment %q", tt.in)
		assert.Equal(t, tt.dec, validation.Decrement(tt.in), "decrement %q", tt.in)
	}

	assert.False(t, validation.CanDecrement("0.5"))
	assert.False(t, validation.CanIncrement("24"))
	assert.True(t, validation.CanIncrement("23.5"))
}

func TestValidateEntry(t *testing.T) {
	assert.Empty(t, validation.ValidateEntry(validEntry()))

	v := validEntry()
	v.Hours = "0.25"
	v.ProjectName = ""
	errs := validation.ValidateEntry(v)
	assert.Len(t, errs, 2)
	assert.Equal(t, validation.MsgHoursOutOfRange, errs[validation.FieldHours])
}

func TestLoginForm(t *testing.T) {
	form := validation.NewLoginForm(validation.LoginValues{}, true)
	assert.Empty(t, form.Messages())

	form.Email.Change("not-an-email")
	assert.Equal(t, validation.Errors{validation.FieldEmail: validation.MsgInvalidEmail}, form.Messages())

	errs, ok := form.Submit()
	assert.False(t, ok)
	assert.Equal(t, "Password is required", errs[validation.FieldPassword])
	assert.Equal(t, validation.MsgRememberMe, errs[validation.FieldRememberMe])

	form.Email.Change("a@b.co")
	form.Password.Change("secret1")
	form.RememberMe.Change(true)
	errs, ok = form.Submit()
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestValidateLogin(t *testing.T) {
	assert.Empty(t, validation.ValidateLogin(validation.LoginValues{Email: "test@example.com", Password: "test123"}))

	errs := validation.ValidateLogin(validation.LoginValues{Email: "x", Password: "abc"})
	assert.Equal(t, validation.MsgInvalidEmail, errs[validation.FieldEmail])
	assert.Equal(t, validation.MsgPasswordTooShort, errs[validation.FieldPassword])
}
