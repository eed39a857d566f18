package extract

import (
	"strings"
	"testing"

	"github.com/corey/codemap/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeScript_ExportedFunction(t *testing.T) {
	src := `export function foo(a: number): string {}`
	a := Extract(src, ports.KindTypeScript)

	require.Len(t, a.Functions, 1)
	fn := a.Functions[0]
	assert.Equal(t, "foo", fn.Name)
	assert.Equal(t, "(a: number): string", fn.Signature)
	assert.False(t, fn.Async)
	assert.True(t, fn.Exported)
	assert.Equal(t, []string{"foo"}, a.Exports)
}

func TestTypeScript_ClassWithAsyncMethod(t *testing.T) {
	src := `class Foo { private async bar(x) { } }`
	a := Extract(src, ports.KindTypeScript)

	require.Len(t, a.Classes, 1)
	c := a.Classes[0]
	assert.Equal(t, "Foo", c.Name)
	assert.False(t, c.Exported)
	require.Len(t, c.Methods, 1)
	assert.Equal(t, "bar", c.Methods[0].Name)
	assert.True(t, c.Methods[0].Async)
	assert.False(t, c.Methods[0].Exported)
}

func TestTypeScript_ConstructorExcluded(t *testing.T) {
	src := `export class Widget {
  constructor(x) {}
  render(props): void {}
}`
	a := Extract(src, ports.KindTypeScript)

	require.Len(t, a.Classes, 1)
	c := a.Classes[0]
	assert.True(t, c.Exported)
	require.Len(t, c.Methods, 1)
	assert.Equal(t, "render", c.Methods[0].Name)
}

func TestTypeScript_ClassNameAsConstructorExcluded(t *testing.T) {
	// Methods sharing the class name count as constructors too.
	src := `class Legacy { Legacy(x) {} run() {} }`
	a := Extract(src, ports.KindTypeScript)

	require.Len(t, a.Classes, 1)
	require.Len(t, a.Classes[0].Methods, 1)
	assert.Equal(t, "run", a.Classes[0].Methods[0].Name)
}

func TestTypeScript_RelativeImportsOnly(t *testing.T) {
	src := `import x from 'package'
import { helper } from './utils/helper'
import Widget from '../components/Widget'`
	a := Extract(src, ports.KindTypeScript)

	assert.Equal(t, []string{"./utils/helper", "../components/Widget"}, a.Imports)
}

func TestTypeScript_DefaultExport(t *testing.T) {
	src := `const App = () => {}
export default App`
	a := Extract(src, ports.KindTypeScript)

	assert.Contains(t, a.Exports, "default: App")
}

func TestTypeScript_TypeDeclarations(t *testing.T) {
	src := `export interface Props { x: number }
type Internal = string
export enum Mode { On, Off }`
	a := Extract(src, ports.KindTypeScript)

	require.Len(t, a.Types, 3)
	assert.Equal(t, ports.TypeInfo{Name: "Props", Kind: "interface", Exported: true}, a.Types[0])
	assert.Equal(t, ports.TypeInfo{Name: "Internal", Kind: "type", Exported: false}, a.Types[1])
	assert.Equal(t, ports.TypeInfo{Name: "Mode", Kind: "enum", Exported: true}, a.Types[2])
}

func TestTypeScript_ArrowFunctions(t *testing.T) {
	src := `export const load = async (id: string): LoadedData => fetch(id)
const square = (n) => n * n`
	a := Extract(src, ports.KindTypeScript)

	require.Len(t, a.Functions, 2)
	assert.Equal(t, "load", a.Functions[0].Name)
	assert.Equal(t, "(id: string): LoadedData", a.Functions[0].Signature)
	assert.True(t, a.Functions[0].Async)
	assert.True(t, a.Functions[0].Exported)
	assert.Equal(t, "square", a.Functions[1].Name)
	assert.False(t, a.Functions[1].Async)
	assert.False(t, a.Functions[1].Exported)
}

func TestTypeScript_ArrowGenericReturnMissed(t *testing.T) {
	// The arrow pattern can't cross the ">" inside a generic return type —
	// a preserved false negative of the heuristic.
	src := `const load = async (id: string): Promise<Data> => fetch(id)`
	a := Extract(src, ports.KindTypeScript)

	assert.Empty(t, a.Functions)
}

func TestTypeScript_MethodWindowBound(t *testing.T) {
	// A method declared past the scan window is not captured.
	var sb strings.Builder
	sb.WriteString("class Big {\n")
	for sb.Len() < ClassScanWindow+100 {
		sb.WriteString("  // filler line\n")
	}
	sb.WriteString("  doWork(a) {}\n}\n")

	a := Extract(sb.String(), ports.KindTypeScript)
	require.Len(t, a.Classes, 1)
	assert.Empty(t, a.Classes[0].Methods)
}

func TestTypeScript_MethodCap(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("class Busy {\n")
	for _, name := range []string{"m01", "m02", "m03", "m04", "m05", "m06", "m07", "m08", "m09", "m10", "m11", "m12"} {
		sb.WriteString("  " + name + "(a) {}\n")
	}
	sb.WriteString("}\n")

	a := Extract(sb.String(), ports.KindTypeScript)
	require.Len(t, a.Classes, 1)
	require.Len(t, a.Classes[0].Methods, MaxMethodsPerClass)
	assert.Equal(t, "m01", a.Classes[0].Methods[0].Name)
	assert.Equal(t, "m10", a.Classes[0].Methods[9].Name)
}

func TestTypeScript_NoDeduplication(t *testing.T) {
	// The same name matching twice appears twice — a preserved limitation.
	src := `function twice(a) {}
function twice(b) {}`
	a := Extract(src, ports.KindTypeScript)

	require.Len(t, a.Functions, 2)
	assert.Equal(t, a.Functions[0].Name, a.Functions[1].Name)
}

func TestTypeScript_Idempotent(t *testing.T) {
	src := `import { x } from './x'
export interface P {}
export class C { async go(a: string): Promise<void> {} }
export const f = (n: number): number => n`

	first := Extract(src, ports.KindTypeScript)
	second := Extract(src, ports.KindTypeScript)
	assert.Equal(t, first, second)
}

func TestExtract_OtherKindEmpty(t *testing.T) {
	a := Extract(`func main() { fmt.Println("hi") }`, ports.KindOther)

	assert.Empty(t, a.Imports)
	assert.Empty(t, a.Exports)
	assert.Empty(t, a.Types)
	assert.Empty(t, a.Classes)
	assert.Empty(t, a.Functions)
}

func TestKindForExtension(t *testing.T) {
	assert.Equal(t, ports.KindTypeScript, KindForExtension(".ts"))
	assert.Equal(t, ports.KindTypeScript, KindForExtension(".TSX"))
	assert.Equal(t, ports.KindTypeScript, KindForExtension(".js"))
	assert.Equal(t, ports.KindPython, KindForExtension(".py"))
	assert.Equal(t, ports.KindOther, KindForExtension(".go"))
	assert.Equal(t, ports.KindOther, KindForExtension(""))
}
