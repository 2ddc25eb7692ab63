package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"ngrun/internal/domain"
)

func TestDetector_Classify(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name string
		line string
		kind domain.MatchKind
		id   string
	}{
		{"indented class with brace", "    public class Foo {", domain.ClassMatch, "Foo"},
		{"class without brace", "public class FooTest", domain.ClassMatch, "FooTest"},
		{"class with trailing whitespace", "public class Foo   \t", domain.ClassMatch, "Foo"},
		{"class with currency sign", "public class $Foo€ {", domain.ClassMatch, "$Foo€"},
		{"class with underscore start", "public class _Foo {", domain.ClassMatch, "_Foo"},
		{"class with CRLF", "public class Foo {\r\n", domain.ClassMatch, "Foo"},
		{"method with throws", "public void testX() throws Exception {", domain.MethodMatch, "testX"},
		{"method without brace", "  public void shouldWork()", domain.MethodMatch, "shouldWork"},
		{"method with spaces in parens", "\tpublic void test_it( ) {", domain.MethodMatch, "test_it"},
		{"method with qualified throws", "public void t() throws java.io.IOException", domain.MethodMatch, "t"},
		{"class extends", "public class Foo extends Bar {", domain.NoMatch, ""},
		{"class implements", "public class Foo implements Runnable {", domain.NoMatch, ""},
		{"package private class", "class Foo {", domain.NoMatch, ""},
		{"final class", "public final class Foo {", domain.NoMatch, ""},
		{"private method", "private void testX() {", domain.NoMatch, ""},
		{"method with parameter", "public void testX(int a) {", domain.NoMatch, ""},
		{"non-void method", "public int testX() {", domain.NoMatch, ""},
		{"static method", "public static void main() {", domain.NoMatch, ""},
		{"two throws tokens", "public void t() throws A, B {", domain.NoMatch, ""},
		{"leading garbage", "x public class Foo {", domain.NoMatch, ""},
		{"trailing garbage", "public void t() {}", domain.NoMatch, ""},
		{"identifier starting with digit", "public class 1Foo {", domain.NoMatch, ""},
		{"annotation on the same line", "@Test public void t() {", domain.NoMatch, ""},
		{"empty line", "", domain.NoMatch, ""},
		{"multi-line signature start", "public void testX(", domain.NoMatch, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := d.Classify(tt.line)
			assert.Equal(t, tt.kind, m.Kind)
			assert.Equal(t, tt.id, m.Identifier)
			assert.Equal(t, tt.kind != domain.NoMatch, d.MayRun(tt.line))
			assert.Equal(t, m.Matched(), d.MayRun(tt.line))
		})
	}
}

func identifier() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z_$][A-Za-z0-9_$]{0,20}`)
}

func blank() *rapid.Generator[string] {
	return rapid.StringMatching(`[ \t]{0,3}`)
}

func TestDetector_ClassProperty(t *testing.T) {
	d := NewDetector()
	rapid.Check(t, func(t *rapid.T) {
		id := identifier().Draw(t, "id")
		brace := rapid.SampledFrom([]string{"", "{", " {"}).Draw(t, "brace")
		line := blank().Draw(t, "lead") + "public class " + id + brace + blank().Draw(t, "trail")

		m := d.Classify(line)
		if m.Kind != domain.ClassMatch || m.Identifier != id {
			t.Fatalf("Classify(%q) = %+v, want class %q", line, m, id)
		}
	})
}

func TestDetector_MethodProperty(t *testing.T) {
	d := NewDetector()
	rapid.Check(t, func(t *rapid.T) {
		id := identifier().Draw(t, "id")
		throws := ""
		if rapid.Bool().Draw(t, "throws") {
			throws = " throws " + identifier().Draw(t, "exception")
		}
		brace := rapid.SampledFrom([]string{"", "{", " {"}).Draw(t, "brace")
		line := blank().Draw(t, "lead") + "public void " + id + "()" + throws + brace

		m := d.Classify(line)
		if m.Kind != domain.MethodMatch || m.Identifier != id {
			t.Fatalf("Classify(%q) = %+v, want method %q", line, m, id)
		}
	})
}

func TestDetector_TrailingTokensNeverMatch(t *testing.T) {
	d := NewDetector()
	rapid.Check(t, func(t *rapid.T) {
		id := identifier().Draw(t, "id")
		decl := rapid.SampledFrom([]string{
			"public class " + id,
			"public void " + id + "()",
		}).Draw(t, "decl")
		extra := rapid.SampledFrom([]string{" extends Base", " implements X", " = 1;", "}", " // run"}).Draw(t, "extra")
		line := decl + extra

		if d.MayRun(line) {
			t.Fatalf("MayRun(%q) = true, want false", line)
		}
		if m := d.Classify(line); m.Matched() {
			t.Fatalf("Classify(%q) = %+v, want no match", line, m)
		}
	})
}
