// Command wlgen turns a wayland protocol XML file into the interface catalog
// used by package wlp.
//
//	go run ./wl/wlgen -in wayland.xml -out wl/wlp/protocol.go
package main

import (
	"bytes"
	"encoding/xml"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/serenize/snaker"
)

type Description struct {
	Summary string `xml:"summary,attr"`
	Text    string `xml:",chardata"`
}

type Request struct {
	Name        string       `xml:"name,attr"`
	Type        string       `xml:"type,attr"`
	Since       string       `xml:"since,attr"`
	Description *Description `xml:"description"`
	Args        []*Arg       `xml:"arg"`
}

type Event struct {
	Name        string       `xml:"name,attr"`
	Since       string       `xml:"since,attr"`
	Description *Description `xml:"description"`
	Args        []*Arg       `xml:"arg"`
}

type Arg struct {
	Name      string `xml:"name,attr"`
	Type      string `xml:"type,attr"`
	Summary   string `xml:"summary,attr"`
	Interface string `xml:"interface,attr"`
	AllowNull string `xml:"allow-null,attr"`
	Enum      string `xml:"enum,attr"`
}

type Interface struct {
	Name        string       `xml:"name,attr"`
	Version     string       `xml:"version,attr"`
	Description *Description `xml:"description"`
	Requests    []*Request   `xml:"request"`
	Events      []*Event     `xml:"event"`
}

type Protocol struct {
	Name        string       `xml:"name,attr"`
	Copyright   string       `xml:"copyright"`
	Description *Description `xml:"description"`
	Interfaces  []*Interface `xml:"interface"`
}

func parse(raw []byte) (*Protocol, error) {
	p := &Protocol{}
	if err := xml.Unmarshal(raw, p); err != nil {
		return nil, errors.Wrap(err, "unable to parse xml")
	}
	if len(p.Interfaces) == 0 {
		return nil, errors.New("protocol defines no interfaces")
	}
	return p, nil
}

var argTypes = map[string]string{
	"int":    "ArgInt",
	"uint":   "ArgUint",
	"fixed":  "ArgFixed",
	"string": "ArgString",
	"object": "ArgObject",
	"new_id": "ArgNewID",
	"array":  "ArgArray",
	"fd":     "ArgFD",
}

// InterfaceName maps a protocol interface name to its Go identifier:
// wl_shm_pool becomes ShmPool.
func InterfaceName(name string) string {
	return snaker.SnakeToCamel(strings.TrimPrefix(name, "wl_"))
}

type message struct {
	Name       string
	Since      int
	Destructor bool
	Args       []*Arg
}

type catalog struct {
	Source     string
	Package    string
	Interfaces []*catalogInterface
}

type catalogInterface struct {
	Name     string
	GoName   string
	Version  int
	Requests []message
	Events   []message
}

func since(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, errors.Errorf("invalid since %q", raw)
	}
	return v, nil
}

func checkArgs(where string, args []*Arg) error {
	for _, a := range args {
		if _, ok := argTypes[a.Type]; !ok {
			return errors.Errorf("%s: argument %s has unknown type %q", where, a.Name, a.Type)
		}
	}
	return nil
}

func buildCatalog(p *Protocol, source, pkg string) (*catalog, error) {
	c := &catalog{Source: source, Package: pkg}
	for _, iface := range p.Interfaces {
		version, err := strconv.Atoi(iface.Version)
		if err != nil {
			return nil, errors.Wrapf(err, "interface %s version", iface.Name)
		}
		ci := &catalogInterface{Name: iface.Name, GoName: InterfaceName(iface.Name), Version: version}
		for _, rq := range iface.Requests {
			s, err := since(rq.Since)
			if err != nil {
				return nil, errors.Wrapf(err, "%s.%s", iface.Name, rq.Name)
			}
			if err := checkArgs(iface.Name+"."+rq.Name, rq.Args); err != nil {
				return nil, err
			}
			ci.Requests = append(ci.Requests, message{rq.Name, s, rq.Type == "destructor", rq.Args})
		}
		for _, ev := range iface.Events {
			s, err := since(ev.Since)
			if err != nil {
				return nil, errors.Wrapf(err, "%s.%s", iface.Name, ev.Name)
			}
			if err := checkArgs(iface.Name+"."+ev.Name, ev.Args); err != nil {
				return nil, err
			}
			ci.Events = append(ci.Events, message{ev.Name, s, false, ev.Args})
		}
		c.Interfaces = append(c.Interfaces, ci)
	}
	return c, nil
}

// MessageLiteral renders one catalog entry as a Message composite literal.
func MessageLiteral(m message) string {
	fields := []string{fmt.Sprintf("Name: %q", m.Name)}
	if m.Since > 1 {
		fields = append(fields, fmt.Sprintf("Since: %d", m.Since))
	}
	if m.Destructor {
		fields = append(fields, "Destructor: true")
	}
	if len(m.Args) == 0 {
		return "{" + strings.Join(fields, ", ") + "},"
	}
	buf := &bytes.Buffer{}
	buf.WriteString("{" + strings.Join(fields, ", ") + ", Args: []Arg{\n")
	for _, a := range m.Args {
		af := []string{fmt.Sprintf("Name: %q", a.Name), "Type: " + argTypes[a.Type]}
		if a.Interface != "" {
			af = append(af, fmt.Sprintf("Interface: %q", a.Interface))
		}
		if a.AllowNull == "true" {
			af = append(af, "AllowNull: true")
		}
		buf.WriteString("{" + strings.Join(af, ", ") + "},\n")
	}
	buf.WriteString("}},")
	return buf.String()
}

const catalogTemplate = `// Code generated by wlgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

const (
	KindUnknown Kind = iota
{{- range .Interfaces}}
	Kind{{.GoName}}
{{- end}}
)
{{range $iface := .Interfaces}}
{{- if .Requests}}
// {{.Name}} requests
const (
{{- range $i, $m := .Requests}}
	Op{{$iface.GoName}}{{camel $m.Name}} = {{$i}}
{{- end}}
)
{{end}}
{{- if .Events}}
// {{.Name}} events
const (
{{- range $i, $m := .Events}}
	Ev{{$iface.GoName}}{{camel $m.Name}} = {{$i}}
{{- end}}
)
{{end}}
{{- end}}
var interfaces = [...]Interface{
{{- range .Interfaces}}
	Kind{{.GoName}}: {
		Name:    {{printf "%q" .Name}},
		Version: {{.Version}},
{{- if .Requests}}
		Requests: []Message{
{{- range .Requests}}
			{{message .}}
{{- end}}
		},
{{- end}}
{{- if .Events}}
		Events: []Message{
{{- range .Events}}
			{{message .}}
{{- end}}
		},
{{- end}}
	},
{{- end}}
}
`

func genTemplate(templateText string) *template.Template {
	funcMap := template.FuncMap{
		"camel":   snaker.SnakeToCamel,
		"message": MessageLiteral,
	}
	return template.Must(template.New("wlp").Funcs(funcMap).Parse(templateText))
}

// generate renders the catalog for p as formatted Go source.
func generate(p *Protocol, source, pkg string) ([]byte, error) {
	c, err := buildCatalog(p, source, pkg)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := genTemplate(catalogTemplate).Execute(buf, c); err != nil {
		return nil, errors.Wrap(err, "unable to execute template")
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "generated code does not parse")
	}
	return out, nil
}

func run(in, out, pkg string) error {
	raw, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrap(err, "unable to read protocol")
	}
	p, err := parse(raw)
	if err != nil {
		return err
	}
	src, err := generate(p, filepath.Base(in), pkg)
	if err != nil {
		return err
	}
	if out == "" || out == "-" {
		_, err = os.Stdout.Write(src)
		return err
	}
	return errors.Wrap(os.WriteFile(out, src, 0o644), "unable to write output")
}

func main() {
	in := flag.String("in", "wayland.xml", "protocol XML file")
	out := flag.String("out", "-", "output file, - for stdout")
	pkg := flag.String("pkg", "wlp", "package name of the generated file")
	flag.Parse()

	if err := run(*in, *out, *pkg); err != nil {
		log.Fatal().Err(err).Str("in", *in).Msg("wlgen failed")
	}
}
