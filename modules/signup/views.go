package signup

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/signup/handler"
	"github.com/dmitrymomot/signup/pkg/registration"
)

const (
	// FormID is the element id datastar patches target.
	FormID = "signup-form"
	// ToastID is the container error toasts are prepended to.
	ToastID = "toast-container"
)

type PageParams struct {
	Form FormParams
	// Success replaces the form when set.
	Success *SuccessParams
}

type FormParams struct {
	Action string
	Form   *Form
}

type SuccessParams struct {
	Name string
}

// Views are the components the service renders. Any nil entry falls back to
// the built-in markup.
type Views struct {
	Page       func(PageParams) templ.Component
	Form       func(FormParams) templ.Component
	Success    func(SuccessParams) templ.Component
	ErrorPage  func(handler.ErrorPageParams) templ.Component
	ErrorToast func(handler.ErrorToastParams) templ.Component
}

func DefaultViews() *Views {
	return &Views{
		Page:       pageView,
		Form:       formView,
		Success:    successView,
		ErrorPage:  errorPageView,
		ErrorToast: errorToastView,
	}
}

func (v *Views) withDefaults() *Views {
	d := DefaultViews()
	if v == nil {
		return d
	}
	out := *v
	if out.Page == nil {
		out.Page = d.Page
	}
	if out.Form == nil {
		out.Form = d.Form
	}
	if out.Success == nil {
		out.Success = d.Success
	}
	if out.ErrorPage == nil {
		out.ErrorPage = d.ErrorPage
	}
	if out.ErrorToast == nil {
		out.ErrorToast = d.ErrorToast
	}
	return &out
}

//go:embed views.html
var viewsHTML string

// templates escape by context: attribute values that datastar evaluates
// (data-on:*) are treated as JavaScript.
var templates = template.Must(template.New("signup").Parse(viewsHTML))

// render executes the named template as a templ component.
func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := templates.ExecuteTemplate(w, name, data); err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		return nil
	})
}

type pageData struct {
	ToastID string
	Form    formData
	Success *successData
}

type formData struct {
	ID      string
	Action  string
	Signals string
	Inputs  []inputData
	Gender  selectData
}

type inputData struct {
	Field string
	Label string
	Type  string
	Value string
	Error string
	Clear template.JS
}

type selectData struct {
	Field   string
	Label   string
	Options []optionData
	Error   string
	Clear   template.JS
}

type optionData struct {
	Value    string
	Selected bool
}

type successData struct {
	ID   string
	Name string
}

func pageView(p PageParams) templ.Component {
	data := pageData{ToastID: ToastID}
	if p.Success != nil {
		data.Success = &successData{ID: FormID, Name: p.Success.Name}
		return render("page", data)
	}
	form, err := newFormData(p.Form)
	if err != nil {
		return failed(err)
	}
	data.Form = form
	return render("page", data)
}

func formView(p FormParams) templ.Component {
	form, err := newFormData(p)
	if err != nil {
		return failed(err)
	}
	return render("form", form)
}

func successView(p SuccessParams) templ.Component {
	return render("success", successData{ID: FormID, Name: p.Name})
}

func errorPageView(p handler.ErrorPageParams) templ.Component {
	return render("error_page", p)
}

func errorToastView(p handler.ErrorToastParams) templ.Component {
	return render("error_toast", p)
}

func failed(err error) templ.Component {
	return templ.ComponentFunc(func(context.Context, io.Writer) error { return err })
}

// clearError is the datastar expression that drops a field's annotation.
// Field names come from registration.Fields, never from the request.
func clearError(field string) template.JS {
	return template.JS("$errors." + field + " = ''")
}

// errorSignals seeds the $errors signal with the first message of every
// field, so inputs can clear their own annotation on input.
func errorSignals(f *Form) (string, error) {
	errs := make(map[string]string, len(registration.Fields))
	for _, field := range registration.Fields {
		errs[field] = f.Message(field)
	}
	data, err := json.Marshal(map[string]any{"errors": errs})
	if err != nil {
		return "", fmt.Errorf("encode form signals: %w", err)
	}
	return string(data), nil
}

func newFormData(p FormParams) (formData, error) {
	f := p.Form
	if f == nil {
		f = NewForm()
	}
	action := p.Action
	if action == "" {
		action = "/"
	}

	signals, err := errorSignals(f)
	if err != nil {
		return formData{}, err
	}

	age := ""
	if f.Values.Age != 0 {
		age = strconv.Itoa(f.Values.Age)
	}

	input := func(field, label, typ, value string) inputData {
		return inputData{
			Field: field,
			Label: label,
			Type:  typ,
			Value: value,
			Error: f.Message(field),
			Clear: clearError(field),
		}
	}

	gender := selectData{
		Field: registration.FieldGender,
		Label: "Gender",
		Error: f.Message(registration.FieldGender),
		Clear: clearError(registration.FieldGender),
	}
	for _, g := range registration.Genders {
		gender.Options = append(gender.Options, optionData{Value: string(g), Selected: g == f.Values.Gender})
	}

	return formData{
		ID:      FormID,
		Action:  action,
		Signals: signals,
		Inputs: []inputData{
			input(registration.FieldName, "Name", "text", f.Values.Name),
			input(registration.FieldAge, "Age", "number", age),
			input(registration.FieldEmail, "Email", "email", f.Values.Email),
			// Passwords are never echoed back into the page.
			input(registration.FieldPassword, "Password", "password", ""),
			input(registration.FieldConfirmPassword, "Confirm password", "password", ""),
			input(registration.FieldPhone, "Phone", "tel", f.Values.Phone),
		},
		Gender: gender,
	}, nil
}
