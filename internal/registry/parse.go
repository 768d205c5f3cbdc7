package registry

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

type xmlRegistry struct {
	Commands   []xmlCommand   `xml:"commands>command"`
	Features   []xmlFeature   `xml:"feature"`
	Extensions []xmlExtension `xml:"extensions>extension"`
}

type xmlCommand struct {
	Proto  *fragments  `xml:"proto"`
	Params []fragments `xml:"param"`
}

type xmlFeature struct {
	Name     string       `xml:"name,attr"`
	Number   string       `xml:"number,attr"`
	Requires []xmlRequire `xml:"require"`
}

type xmlExtension struct {
	Name     string       `xml:"name,attr"`
	Requires []xmlRequire `xml:"require"`
}

type xmlRequire struct {
	Commands []struct {
		Name string `xml:"name,attr"`
	} `xml:"command"`
}

// fragments collects the mixed content of a <proto> or <param> element in
// document order, split around its <name> child.
type fragments struct {
	before strings.Builder
	name   strings.Builder
	after  strings.Builder
	named  bool
}

func (f *fragments) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	depth := 0
	inName := false
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 && t.Name.Local == "name" && !f.named {
				inName = true
				f.named = true
			}
		case xml.EndElement:
			if depth == 0 {
				return nil
			}
			if depth == 1 {
				inName = false
			}
			depth--
		case xml.CharData:
			switch {
			case inName:
				f.name.Write(t)
			case f.named:
				f.after.Write(t)
			default:
				f.before.Write(t)
			}
		}
	}
}

func (f *fragments) parts() (typ, name, typeEnd string) {
	return strings.TrimSpace(f.before.String()),
		strings.TrimSpace(f.name.String()),
		strings.TrimSpace(f.after.String())
}

// Load parses the registry document at path.
func Load(path string) (*Registry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}
	defer file.Close()

	reg, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Parse reads a Khronos-style XML registry. Each command becomes an entry
// point whose version is the lowest feature requiring it; commands only
// required by extensions carry the extension name instead.
func Parse(r io.Reader) (*Registry, error) {
	var doc xmlRegistry
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRegistry, err)
	}

	entries := make([]EntryPoint, 0, len(doc.Commands))
	index := make(map[string]int, len(doc.Commands))
	for i, cmd := range doc.Commands {
		ep, err := buildEntryPoint(i, cmd)
		if err != nil {
			return nil, err
		}
		if _, dup := index[ep.Name]; dup {
			return nil, malformed("command %s is defined more than once", ep.Name)
		}
		index[ep.Name] = len(entries)
		entries = append(entries, ep)
	}

	versioned := make(map[string]bool, len(entries))
	for _, feature := range doc.Features {
		version, err := featureVersion(feature)
		if err != nil {
			return nil, err
		}
		for _, req := range feature.Requires {
			for _, ref := range req.Commands {
				i, ok := index[ref.Name]
				if !ok {
					return nil, malformed("feature %s requires unknown command %s", feature.Name, ref.Name)
				}
				if !versioned[ref.Name] || version.Less(entries[i].Version) {
					entries[i].Version = version
					entries[i].Extension = ""
					versioned[ref.Name] = true
				}
			}
		}
	}

	for _, ext := range doc.Extensions {
		for _, req := range ext.Requires {
			for _, ref := range req.Commands {
				i, ok := index[ref.Name]
				if !ok {
					return nil, malformed("extension %s requires unknown command %s", ext.Name, ref.Name)
				}
				if !versioned[ref.Name] && entries[i].Extension == "" {
					entries[i].Extension = ext.Name
				}
			}
		}
	}

	for _, ep := range entries {
		if !versioned[ep.Name] && ep.Extension == "" {
			return nil, malformed("command %s is not required by any feature or extension", ep.Name)
		}
	}

	return New(entries)
}

func buildEntryPoint(pos int, cmd xmlCommand) (EntryPoint, error) {
	if cmd.Proto == nil {
		return EntryPoint{}, malformed("command #%d has no proto", pos)
	}
	ret, name, trailing := cmd.Proto.parts()
	if name == "" {
		return EntryPoint{}, malformed("command #%d has no name", pos)
	}
	if ret == "" || trailing != "" {
		return EntryPoint{}, malformed("command %s: cannot reconstruct return type", name)
	}

	ep := EntryPoint{
		Name:   name,
		Return: ret,
		Params: make([]Param, 0, len(cmd.Params)),
		Exempt: IsExempt(name),
	}
	for i := range cmd.Params {
		typ, pname, typeEnd := cmd.Params[i].parts()
		if pname == "" || typ == "" {
			return EntryPoint{}, malformed("command %s: cannot reconstruct parameter %d", name, i)
		}
		ep.Params = append(ep.Params, Param{Type: typ, TypeEnd: typeEnd, Name: pname})
	}
	return ep, nil
}

func featureVersion(f xmlFeature) (Version, error) {
	src := f.Number
	if src == "" {
		src = f.Name
	}
	v, err := ParseVersion(src)
	if err != nil {
		return Version{}, fmt.Errorf("%w: feature %q: %v", ErrMalformedRegistry, f.Name, err)
	}
	return v, nil
}
