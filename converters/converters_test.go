// Copyright 2026 The Feeder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package converters

import (
	"errors"
	"testing"

	"github.com/open2b/feeder"
)

var tests = []struct {
	name     string
	src      string
	expected string
}{
	// base64
	{"base64", ``, ``},
	{"base64", `hello`, `aGVsbG8=`},
	{"unbase64", `aGVsbG8=`, `hello`},
	{"unbase64", " aGVsbG8=\n", `hello`},

	// capitalize
	{"capitalize", ``, ``},
	{"capitalize", `hello world`, `Hello world`},
	{"capitalize", `  hello`, `  Hello`},
	{"capitalize", `Hello`, `Hello`},
	{"capitalize", `èa`, `Èa`},

	// case
	{"upper", `hello world`, `HELLO WORLD`},
	{"upper", `èa`, `ÈA`},
	{"lower", `HeLLo`, `hello`},
	{"title", `hello wORLD`, `Hello World`},
	{"kebab", `HelloWorld`, `hello-world`},
	{"kebab", `Foo Bar`, `foo-bar`},
	{"kebab", `foo`, `foo`},

	// checksums
	{"hex", ``, ``},
	{"hex", `ab`, `6162`},
	{"md5", ``, `d41d8cd98f00b204e9800998ecf8427e`},
	{"sha256", ``, `e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855`},

	// html
	{"html", `<a href="x">'&'</a>`, `&lt;a href=&#34;x&#34;&gt;&#39;&amp;&#39;&lt;/a&gt;`},

	// markdown
	{"markdown", `**a**`, `<p><strong>a</strong></p>`},
	{"markdown", `# T`, `<h1>T</h1>`},
	{"markdown", `~~x~~`, `<p><del>x</del></p>`},
	{"markdown", ``, ``},

	// query
	{"query", `abc`, `abc`},
	{"query", `a b&c`, `a%20b%26c`},
	{"query", `a-b.c_d`, `a-b.c_d`},

	// trim
	{"trim", "  x \n", `x`},
}

func TestConverters(t *testing.T) {
	for _, test := range tests {
		conv, ok := Lookup(test.name)
		if !ok {
			t.Fatalf("missing converter %q", test.name)
		}
		got, err := conv(test.src)
		if err != nil {
			t.Errorf("%s(%q): unexpected error: %s", test.name, test.src, err)
			continue
		}
		if got != test.expected {
			t.Errorf("%s(%q): expecting %q, got %q", test.name, test.src, test.expected, got)
		}
	}
}

func TestUnbase64Error(t *testing.T) {
	_, err := Unbase64("!!")
	if err == nil {
		t.Fatal("expecting error, got nil")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(converters) {
		t.Fatalf("expecting %d names, got %d", len(converters), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names are not sorted: %q", names)
		}
	}
	for _, name := range names {
		if err := feeder.ValidateName(name); err != nil {
			t.Fatalf("converter name %q is not a valid parameter name: %s", name, err)
		}
	}
}

func TestParameter(t *testing.T) {
	p, err := Parameter("upper")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "upper" || p.Value.Kind() != feeder.Function {
		t.Fatalf("unexpected parameter %q of kind %s", p.Name, p.Value.Kind())
	}
	_, err = Parameter("nope")
	if err == nil {
		t.Fatal("expecting error, got nil")
	}
}

func TestFeed(t *testing.T) {
	f, err := feeder.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	var params []feeder.Parameter
	for _, name := range []string{"upper", "markdown", "unbase64"} {
		p, err := Parameter(name)
		if err != nil {
			t.Fatal(err)
		}
		params = append(params, p)
	}
	params = append(params, feeder.Parameter{Name: "name", Value: feeder.StringValue("world")})

	got, err := f.Feed(params, `$markdown("\# Hello $upper($name)")`)
	if err != nil {
		t.Fatal(err)
	}
	if expected := `<h1>Hello WORLD</h1>`; got != expected {
		t.Fatalf("expecting %q, got %q", expected, got)
	}

	_, err = f.Feed(params, `$unbase64(!!)`)
	var e *feeder.ConversionError
	if !errors.As(err, &e) {
		t.Fatalf("expecting *feeder.ConversionError, got %#v", err)
	}
	if e.Name != "unbase64" || e.Arg != "!!" {
		t.Fatalf("unexpected error %q", e)
	}
}
