package settingsgen

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"
	"github.com/thorn-jmh/errorst"
)

// RuntimePath is the import path of the package generated code calls into.
const RuntimePath = "gsgen/pkg/gsettings"

const generatedHeader = "Code generated by gsgen. DO NOT EDIT."

type Decl interface {
	Gen(file *jen.File) error
}

// Render emits unit as a formatted Go file of package pkg.
func Render(unit *Unit, pkg string) ([]byte, error) {
	f := jen.NewFile(pkg)
	f.HeaderComment(generatedHeader)
	f.ImportName(RuntimePath, "gsettings")

	var decls []Decl
	for _, aux := range unit.AuxTypes {
		decls = append(decls, aux)
	}
	decls = append(decls, &settingsDecl{unit: unit})
	for _, acc := range unit.Accessors {
		decls = append(decls, &accessorDecl{Accessor: acc, typeName: unit.TypeName})
	}
	for _, d := range decls {
		if err := d.Gen(f); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, errorst.Wrap(err, "failed to render settings of schema <%s>", unit.SchemaID)
	}
	return buf.Bytes(), nil
}

// >>>>>>>>>>>>>>>>>>>> settings type >>>>>>>>>>>>>>>>>>>>>>>

type settingsDecl struct {
	unit *Unit
}

func (d *settingsDecl) Gen(f *jen.File) error {
	name := d.unit.TypeName

	if d.unit.Default {
		f.Line()
		f.Commentf("SchemaID is the id of the schema %s reads.", name)
		f.Const().Id("SchemaID").Op("=").Lit(d.unit.SchemaID)
	}

	f.Line()
	f.Commentf("%s gives typed access to the keys of schema `%s`.", name, d.unit.SchemaID)
	f.Type().Id(name).Struct(jen.Op("*").Qual(RuntimePath, "Settings"))

	f.Line()
	if d.unit.Default {
		f.Commentf("New%s returns the settings of schema SchemaID held by store.", name)
		f.Func().Id("New"+name).Params(jen.Id("store").Qual(RuntimePath, "Store")).Op("*").Id(name).Block(
			jen.Return(newSettings(name, jen.Id("SchemaID"))),
		)
		f.Line()
		f.Commentf("Default%s is New%s on the default store.", name, name)
		f.Func().Id("Default"+name).Params().Op("*").Id(name).Block(
			jen.Return(jen.Id("New"+name).Call(jen.Qual(RuntimePath, "DefaultStore").Call())),
		)
		return nil
	}
	f.Commentf("New%s returns the settings of schema schemaID held by store.", name)
	f.Func().Id("New"+name).Params(
		jen.Id("store").Qual(RuntimePath, "Store"),
		jen.Id("schemaID").String(),
	).Op("*").Id(name).Block(
		jen.Return(newSettings(name, jen.Id("schemaID"))),
	)
	return nil
}

func newSettings(name string, schemaID jen.Code) *jen.Statement {
	return jen.Op("&").Id(name).Values(
		jen.Id("Settings").Op(":").Qual(RuntimePath, "New").Call(jen.Id("store"), schemaID),
	)
}

// >>>>>>>>>>>>>>>>>>>> accessors >>>>>>>>>>>>>>>>>>>>>>>

type accessorDecl struct {
	*Accessor
	typeName string
}

func (d *accessorDecl) Gen(f *jen.File) error {
	key := jen.Lit(d.Key)
	settings := func() *jen.Statement { return jen.Id("s").Dot("Settings") }
	ret, arg := typeCode(d.Ret), typeCode(d.Arg)
	doc := d.docLines()

	method := func(name, first string) *jen.Statement {
		f.Line()
		f.Comment(name + " " + first)
		for _, line := range doc {
			f.Comment(line)
		}
		return f.Func().Params(jen.Id("s").Op("*").Id(d.typeName)).Id(name)
	}
	ref := "key `" + d.Key + "`"

	method(d.Name, "gets the value of "+ref+".").Params().Add(ret).Block(
		jen.Return(jen.Qual(RuntimePath, "MustGet").Types(ret).Call(settings(), key)),
	)

	method("Set"+d.Name, "sets "+ref+", panicking if it cannot be written.").Params(jen.Id("value").Add(arg)).Block(
		jen.If(
			jen.Err().Op(":=").Id("s").Dot("TrySet"+d.Name).Call(jen.Id("value")),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Panic(jen.Qual("fmt", "Sprintf").Call(
				jen.Lit("failed to set value for key `"+d.Key+"`: %v"), jen.Err(),
			)),
		),
	)

	method("TrySet"+d.Name, "sets "+ref+".").Params(jen.Id("value").Add(arg)).Error().Block(
		jen.Return(jen.Qual(RuntimePath, "Set").Call(settings(), key, jen.Id("value"))),
	)

	method("Connect"+d.Name+"Changed", "calls f whenever "+ref+" changes.").Params(
		jen.Id("f").Func().Params(jen.Op("*").Id(d.typeName)),
	).Op("*").Qual(RuntimePath, "Subscription").Block(
		jen.Return(settings().Dot("ConnectChanged").Call(key, jen.Func().Params(jen.String()).Block(
			jen.Id("f").Call(jen.Id("s")),
		))),
	)

	method("Bind"+d.Name, "binds "+ref+" to the property prop of obj.").Params(
		jen.Id("obj").Qual(RuntimePath, "Object"),
		jen.Id("prop").String(),
	).Op("*").Qual(RuntimePath, "BindingBuilder").Block(
		jen.Return(settings().Dot("Bind").Call(key, jen.Id("obj"), jen.Id("prop"))),
	)

	method("Create"+d.Name+"Action", "creates an action that sets "+ref+".").Params().Op("*").Qual(RuntimePath, "Action").Block(
		jen.Return(jen.Qual(RuntimePath, "MustCreateAction").Call(settings(), key)),
	)

	method(d.Name+"DefaultValue", "returns the default value of "+ref+".").Params().Add(ret).Block(
		jen.Return(jen.Qual(RuntimePath, "MustDefault").Types(ret).Call(settings(), key)),
	)

	method("Reset"+d.Name, "restores "+ref+" to its default value.").Params().Block(
		jen.Qual(RuntimePath, "MustReset").Call(settings(), key),
	)
	return nil
}

// docLines returns the comment lines shared by every method of the accessor,
// each preceded by an empty comment line.
func (a *Accessor) docLines() []string {
	var lines []string
	paragraph := func(text string, prose bool) {
		if text = strings.TrimSpace(text); text == "" {
			return
		}
		var group []string
		flush := func() {
			if prose && len(group) == 1 {
				group[0] = sentence(group[0])
			}
			lines = append(lines, group...)
			group = nil
		}
		lines = append(lines, "//")
		for _, l := range strings.Split(text, "\n") {
			if l = strings.TrimSpace(l); l == "" {
				flush()
				if lines[len(lines)-1] != "//" {
					lines = append(lines, "//")
				}
				continue
			}
			group = append(group, l)
		}
		flush()
	}

	paragraph(a.Doc.Summary, true)
	paragraph(a.Doc.Description, true)
	if a.Doc.Default != "" {
		paragraph("default: "+a.Doc.Default, false)
	}
	if r := a.Doc.Range; r != nil {
		var bounds []string
		if r.Min != "" {
			bounds = append(bounds, "min: "+r.Min)
		}
		if r.Max != "" {
			bounds = append(bounds, "max: "+r.Max)
		}
		paragraph(strings.Join(bounds, "; "), false)
	}
	return lines
}

// sentence ends line with a period unless it already ends in punctuation.
// gofmt turns a one-line paragraph ending in a letter or digit into a heading.
func sentence(line string) string {
	r, _ := utf8.DecodeLastRuneInString(line)
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return line + "."
	}
	return line
}

// typeCode renders typ, adding the import of its package if it has one.
func typeCode(typ Type) *jen.Statement {
	s := &jen.Statement{}
	for _, m := range typ.Modifiers {
		switch m {
		case "*":
			s.Op("*")
		case "[]":
			s.Index()
		default:
			n, _ := strconv.Atoi(strings.Trim(m, "[]"))
			s.Index(jen.Lit(n))
		}
	}
	if typ.Domain != "" {
		return s.Qual(typ.Domain, typ.Name)
	}
	return s.Id(typ.Name)
}

// >>>>>>>>>>>>>>>>>>>> aux types >>>>>>>>>>>>>>>>>>>>>>>

func (a *AuxType) Gen(f *jen.File) error {
	base := "int32"
	if a.Kind == AuxFlags {
		base = "uint32"
	}
	f.Line()
	f.Commentf("%s is generated from %s `%s`.", a.Name, a.Kind, a.ID)
	f.Type().Id(a.Name).Id(base)

	f.Line()
	f.Const().DefsFunc(func(g *jen.Group) {
		for _, m := range a.Members {
			g.Id(m.Ident).Id(a.Name).Op("=").Lit(int(m.Value))
		}
	})

	if a.Kind == AuxFlags {
		a.genFlags(f)
	} else {
		a.genEnum(f)
	}
	a.genVariant(f)
	return nil
}

func (a *AuxType) genEnum(f *jen.File) {
	f.Line()
	f.Comment("String returns the nick of v.")
	f.Func().Params(jen.Id("v").Id(a.Name)).Id("String").Params().String().Block(
		jen.Switch(jen.Id("v")).BlockFunc(func(g *jen.Group) {
			seen := make(map[int64]bool, len(a.Members))
			for _, m := range a.Members {
				if seen[m.Value] {
					continue
				}
				seen[m.Value] = true
				g.Case(jen.Id(m.Ident)).Block(jen.Return(jen.Lit(m.Nick)))
			}
			g.Default().Block(jen.Return(jen.Qual("fmt", "Sprintf").Call(
				jen.Lit(a.Name+"(%d)"), jen.Int32().Call(jen.Id("v")),
			)))
		}),
	)

	f.Line()
	f.Commentf("Parse%s returns the member with the given nick.", a.Name)
	f.Func().Id("Parse"+a.Name).Params(jen.Id("nick").String()).Params(jen.Id(a.Name), jen.Bool()).Block(
		jen.Switch(jen.Id("nick")).BlockFunc(func(g *jen.Group) {
			for _, m := range a.Members {
				g.Case(jen.Lit(m.Nick)).Block(jen.Return(jen.Id(m.Ident), jen.True()))
			}
			g.Default().Block(jen.Return(jen.Lit(0), jen.False()))
		}),
	)
}

func (a *AuxType) genFlags(f *jen.File) {
	binary := func(name, doc, op string, ret jen.Code) {
		f.Line()
		f.Comment(name + " " + doc)
		f.Func().Params(jen.Id("v").Id(a.Name)).Id(name).Params(jen.Id("other").Id(a.Name)).Add(ret).Block(
			jen.Return(jen.Id("v").Op(op).Id("other")),
		)
	}
	f.Line()
	f.Comment("Contains reports whether every bit of other is set in v.")
	f.Func().Params(jen.Id("v").Id(a.Name)).Id("Contains").Params(jen.Id("other").Id(a.Name)).Bool().Block(
		jen.Return(jen.Id("v").Op("&").Id("other").Op("==").Id("other")),
	)
	binary("Union", "returns the bits set in v or other.", "|", jen.Id(a.Name))
	binary("Intersection", "returns the bits set in both v and other.", "&", jen.Id(a.Name))

	f.Line()
	f.Comment("Nicks returns the nicks of the bits set in v, in declaration order.")
	f.Func().Params(jen.Id("v").Id(a.Name)).Id("Nicks").Params().Index().String().BlockFunc(func(g *jen.Group) {
		g.Id("nicks").Op(":=").Index().String().Values()
		for _, m := range a.Members {
			if m.Value == 0 {
				continue
			}
			g.If(jen.Id("v").Dot("Contains").Call(jen.Id(m.Ident))).Block(
				jen.Id("nicks").Op("=").Append(jen.Id("nicks"), jen.Lit(m.Nick)),
			)
		}
		g.Return(jen.Id("nicks"))
	})

	f.Line()
	f.Commentf("Parse%s ors the bits of nicks together. It fails on an unknown nick.", a.Name)
	f.Func().Id("Parse"+a.Name).Params(jen.Id("nicks").Index().String()).Params(jen.Id(a.Name), jen.Bool()).Block(
		jen.Var().Id("v").Id(a.Name),
		jen.For(jen.List(jen.Id("_"), jen.Id("nick")).Op(":=").Range().Id("nicks")).Block(
			jen.Switch(jen.Id("nick")).BlockFunc(func(g *jen.Group) {
				for _, m := range a.Members {
					g.Case(jen.Lit(m.Nick)).Block(jen.Id("v").Op("|=").Id(m.Ident))
				}
				g.Default().Block(jen.Return(jen.Lit(0), jen.False()))
			}),
		),
		jen.Return(jen.Id("v"), jen.True()),
	)
}

// genVariant emits the methods gsettings uses to encode and decode the type.
func (a *AuxType) genVariant(f *jen.File) {
	wire, newWire, read, want := "TypeString", "NewString", "Str", "a string"
	toWire := jen.Id("v").Dot("String").Call()
	if a.Kind == AuxFlags {
		wire, newWire, read, want = "TypeStringArray", "NewStringArray", "Strv", "a string array"
		toWire = jen.Id("v").Dot("Nicks").Call()
	}
	decodeErr := func(format string, args ...jen.Code) *jen.Statement {
		return jen.Return(jen.Qual("fmt", "Errorf").Call(
			append([]jen.Code{jen.Lit("%w: " + format), jen.Qual(RuntimePath, "ErrDecode")}, args...)...,
		))
	}

	f.Line()
	f.Func().Params(jen.Id(a.Name)).Id("StaticVariantType").Params().Qual(RuntimePath, "VariantType").Block(
		jen.Return(jen.Qual(RuntimePath, wire)),
	)

	f.Line()
	f.Func().Params(jen.Id("v").Id(a.Name)).Id("ToVariant").Params().Qual(RuntimePath, "Variant").Block(
		jen.Return(jen.Qual(RuntimePath, newWire).Call(toWire)),
	)

	f.Line()
	f.Func().Params(jen.Id("v").Op("*").Id(a.Name)).Id("FromVariant").Params(
		jen.Id("variant").Qual(RuntimePath, "Variant"),
	).Error().Block(
		jen.List(jen.Id("wire"), jen.Id("ok")).Op(":=").Id("variant").Dot(read).Call(),
		jen.If(jen.Op("!").Id("ok")).Block(
			decodeErr(a.Name+" needs "+want+", got <%s>", jen.Id("variant").Dot("Type").Call()),
		),
		jen.List(jen.Id("value"), jen.Id("ok")).Op(":=").Id("Parse"+a.Name).Call(jen.Id("wire")),
		jen.If(jen.Op("!").Id("ok")).Block(
			decodeErr("invalid "+a.Name+" value %q", jen.Id("wire")),
		),
		jen.Op("*").Id("v").Op("=").Id("value"),
		jen.Return(jen.Nil()),
	)
}
