package form

import (
	"testing"

	"autocomplete/internal/dom"
)

func newFormWithField(t *testing.T, name string) (*Form, *dom.Element, *Internals) {
	t.Helper()
	formEl := dom.NewElement("form")
	host := dom.NewElement("autocomplete-input")
	formEl.AppendChild(host)
	f := New(formEl)
	in := Attach(host, name)
	t.Cleanup(func() {
		in.Detach()
		f.Close()
	})
	return f, host, in
}

func TestFormDataIncludesAssociatedField(t *testing.T) {
	f, _, in := newFormWithField(t, "foo")

	if got := f.FormData().Get("foo"); got != "" {
		t.Fatalf("expected no entry before a value is set, got %q", got)
	}
	if _, ok := f.FormData()["foo"]; ok {
		t.Fatal("expected field without value to be omitted")
	}

	in.SetFormValue("bar", "Bar")
	if got := f.FormData().Get("foo"); got != "bar" {
		t.Fatalf("expected foo=bar, got %q", got)
	}
	if in.State() != "Bar" {
		t.Fatalf("expected state Bar, got %q", in.State())
	}

	in.ClearFormValue()
	if _, ok := f.FormData()["foo"]; ok {
		t.Fatal("expected cleared field to be omitted")
	}
}

func TestFormDataIncludesNamedInputs(t *testing.T) {
	f, _, in := newFormWithField(t, "city")
	in.SetFormValue("nyc", "New York")
	hidden := dom.NewElement("input").SetAttr("name", "token").SetAttr("value", "abc")
	f.Element().AppendChild(hidden)
	f.Element().AppendChild(dom.NewElement("input")) // unnamed, skipped

	data := f.FormData()
	if data.Get("token") != "abc" || data.Get("city") != "nyc" {
		t.Fatalf("unexpected form data %v", data)
	}
	if data.Encode() != "city=nyc&token=abc" {
		t.Fatalf("unexpected encoding %q", data.Encode())
	}
}

func TestInternalsFormLookup(t *testing.T) {
	f, host, in := newFormWithField(t, "foo")
	if in.Form() != f {
		t.Fatal("expected internals to resolve enclosing form")
	}

	host.Remove()
	if in.Form() != nil {
		t.Fatal("expected no form once host leaves the form")
	}

	var nilInternals *Internals
	if nilInternals.Form() != nil {
		t.Fatal("expected nil internals to have no form")
	}
	nilInternals.Detach()
}

func TestResetRunsCallbacks(t *testing.T) {
	f, _, in := newFormWithField(t, "foo")
	called := 0
	in.OnReset(func() { called++ })

	f.Reset()
	if called != 1 {
		t.Fatalf("expected reset callback once, got %d", called)
	}
}

func TestDetachRemovesField(t *testing.T) {
	f, _, in := newFormWithField(t, "foo")
	in.SetFormValue("bar", "")
	in.Detach()
	in.Detach()
	if _, ok := f.FormData()["foo"]; ok {
		t.Fatal("expected detached field to be omitted")
	}
}

func TestEmptyNameOmitted(t *testing.T) {
	f, _, in := newFormWithField(t, "")
	in.SetFormValue("bar", "")
	if len(f.FormData()) != 0 {
		t.Fatalf("expected nameless field to be omitted, got %v", f.FormData())
	}
	in.SetName("late")
	if f.FormData().Get("late") != "bar" {
		t.Fatal("expected renamed field to submit")
	}
}
