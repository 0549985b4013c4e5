package validation

import (
	"sort"
	"strings"
)

// Field keys shared by the forms and the JSON API.
const (
	FieldDate        = "date"
	FieldProject     = "projectName"
	FieldWorkType    = "typeOfWork"
	FieldDescription = "description"
	FieldHours       = "hours"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldRememberMe  = "rememberMe"
)

// Errors maps a field key to its message.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

func (e Errors) add(key, msg string) {
	if msg != "" {
		e[key] = msg
	}
}

type EntryValues struct {
	Date        string
	ProjectName string
	TypeOfWork  string
	Description string
	Hours       string
}

// ValidateEntry evaluates every entry rule at once.
func ValidateEntry(v EntryValues) Errors {
	errs := Errors{}
	errs.add(FieldDate, Date(v.Date))
	errs.add(FieldProject, Project(v.ProjectName))
	errs.add(FieldWorkType, WorkType(v.TypeOfWork))
	errs.add(FieldDescription, Description(v.Description))
	errs.add(FieldHours, Hours(v.Hours))
	return errs
}

// EntryForm is the add/edit entry dialog. A new form starts with one hour.
type EntryForm struct {
	Date        *Field[string]
	Project     *Field[string]
	WorkType    *Field[string]
	Description *Field[string]
	Hours       *Field[string]

	showAll bool
}

func NewEntryForm(initial EntryValues) *EntryForm {
	if initial.Hours == "" {
		initial.Hours = "1"
	}
	return &EntryForm{
		Date:        NewField(Date, initial.Date),
		Project:     NewField(Project, initial.ProjectName),
		WorkType:    NewField(WorkType, initial.TypeOfWork),
		Description: NewField(Description, initial.Description),
		Hours:       NewField(Hours, initial.Hours),
	}
}

func (f *EntryForm) Values() EntryValues {
	return EntryValues{
		Date:        f.Date.Value(),
		ProjectName: f.Project.Value(),
		TypeOfWork:  f.WorkType.Value(),
		Description: f.Description.Value(),
		Hours:       f.Hours.Value(),
	}
}

func (f *EntryForm) IncrementHours() { f.Hours.Change(Increment(f.Hours.Value())) }
func (f *EntryForm) DecrementHours() { f.Hours.Change(Decrement(f.Hours.Value())) }

// Submit shows validation on every field and reports whether the form may be
// persisted. Only the local rules decide that; the returned messages are what
// the form displays.
func (f *EntryForm) Submit() (Errors, bool) {
	f.showAll = true
	ok := f.Date.Valid() && f.Project.Valid() && f.WorkType.Valid() &&
		f.Description.Valid() && f.Hours.Valid()
	return f.Messages(), ok
}

// Messages returns what is currently displayed, keyed by field.
func (f *EntryForm) Messages() Errors {
	errs := Errors{}
	errs.add(FieldDate, f.Date.Message(f.showAll))
	errs.add(FieldProject, f.Project.Message(f.showAll))
	errs.add(FieldWorkType, f.WorkType.Message(f.showAll))
	errs.add(FieldDescription, f.Description.Message(f.showAll))
	errs.add(FieldHours, f.Hours.Message(f.showAll))
	return errs
}

type LoginValues struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginForm is the sign-in form. RequireRememberMe makes the checkbox mandatory.
type LoginForm struct {
	Email      *Field[string]
	Password   *Field[string]
	RememberMe *Field[bool]

	showAll bool
}

func NewLoginForm(initial LoginValues, requireRememberMe bool) *LoginForm {
	return &LoginForm{
		Email:      NewField(TextInput(KindEmail, "Email", true), initial.Email),
		Password:   NewField(TextInput(KindPassword, "Password", true), initial.Password),
		RememberMe: NewField(RememberMe(requireRememberMe), initial.RememberMe),
	}
}

func (f *LoginForm) Values() LoginValues {
	return LoginValues{
		Email:      f.Email.Value(),
		Password:   f.Password.Value(),
		RememberMe: f.RememberMe.Value(),
	}
}

func (f *LoginForm) Submit() (Errors, bool) {
	f.showAll = true
	ok := f.Email.Valid() && f.Password.Valid() && f.RememberMe.Valid()
	return f.Messages(), ok
}

func (f *LoginForm) Messages() Errors {
	errs := Errors{}
	errs.add(FieldEmail, f.Email.Message(f.showAll))
	errs.add(FieldPassword, f.Password.Message(f.showAll))
	errs.add(FieldRememberMe, f.RememberMe.Message(f.showAll))
	return errs
}

// ValidateLogin is the stateless form of LoginForm.Submit used by the server.
func ValidateLogin(v LoginValues) Errors {
	errs, _ := NewLoginForm(v, false).Submit()
	return errs
}
