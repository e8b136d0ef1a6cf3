package svgdoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

func (e *Element) startElement() xml.StartElement {
	se := xml.StartElement{Name: xml.Name{Local: e.Name}}
	for _, a := range e.Attrs {
		se.Attr = append(se.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	return se
}

func (e *Element) marshal(enc *xml.Encoder) error {
	se := e.startElement()
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := c.marshal(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(se.End())
}

// Encode writes the XML declaration followed by the tree rooted at `e`.
// Each level is indented by `indent`; an empty `indent` disables
// indentation and line breaks.
func (e *Element) Encode(w io.Writer, indent string) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if indent != "" {
		enc.Indent("", indent)
	}
	if err := e.marshal(enc); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// String returns the indented document.
func (e *Element) String() string {
	var buf bytes.Buffer
	if err := e.Encode(&buf, "  "); err != nil {
		return "<invalid document: " + err.Error() + ">"
	}
	return buf.String()
}

// attribute names are rebuilt with their usual prefix;
// other namespaces are dropped
func attrName(name xml.Name) string {
	switch name.Space {
	case "", "http://www.w3.org/2000/svg":
		return name.Local
	case "xmlns":
		return "xmlns:" + name.Local
	case "http://www.w3.org/1999/xlink":
		return "xlink:" + name.Local
	default:
		return name.Local
	}
}

// Read parses an XML document and returns its root element.
// Comments, processing instructions and whitespace only text are ignored.
func Read(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		root  *Element
		stack []*Element
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			el := &Element{Name: se.Name.Local}
			for _, a := range se.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: attrName(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) != 0 {
				if text := strings.TrimSpace(string(se)); text != "" {
					stack[len(stack)-1].Text += text
				}
			}
		}
	}
	if root == nil {
		return nil, errors.New("invalid xml document: no root element")
	}
	return root, nil
}
