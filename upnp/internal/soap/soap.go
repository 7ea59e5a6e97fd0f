// Package soap implements the subset of SOAP 1.1 used by UPnP control.
package soap

import (
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

type Action struct {
	Namespace string
	Name      string
}

// An Error represents an UPnP DCP specific error.
type Error struct {
	Code        int
	Description string
}

// Error implements the error interface
func (err *Error) Error() string {
	return strconv.Itoa(err.Code) + " " + err.Description
}

// UPnP defined error codes
var (
	ErrInvalidAction        = &Error{Code: 401, Description: "Invalid Action"}
	ErrInvalidArgs          = &Error{Code: 402, Description: "Invalid Args"}
	ErrActionFailed         = &Error{Code: 501, Description: "Action Failed"}
	ErrArgValueInvalid      = &Error{Code: 600, Description: "Argument Value Invalid"}
	ErrArgValueOutOfRange   = &Error{Code: 601, Description: "Argument Value Out of Range"}
	ErrActionNotImplemented = &Error{Code: 602, Description: "Optional Action Not Implemented"}
	ErrOutOfMemory          = &Error{Code: 603, Description: "Out of Memory"}
	ErrInterventionRequired = &Error{Code: 604, Description: "Human Intervention Required"}
	ErrArgTooLong           = &Error{Code: 605, Description: "String Argument Too Long"}
)

// ErrMalformedAction is returned for a missing or invalid SOAPAction
// header.
var ErrMalformedAction = errors.New("soap: malformed SOAPAction header")

type Request struct {
	Action *Action
	Args   map[string]string
}

func ParseHTTPRequest(r *http.Request) (*Request, error) {
	action, err := ParseAction(r.Header.Get("SOAPAction"))
	if err != nil {
		return nil, err
	}

	args, err := parseArgs(r.Body, action)
	if err != nil {
		return nil, err
	}

	return &Request{action, args}, nil
}

// ParseAction parses a SOAPAction header value of the form
// "urn:...:service:Name:1#Action". The quotes are optional.
func ParseAction(s string) (*Action, error) {
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}

	ns, name, ok := strings.Cut(s, "#")
	if !ok || ns == "" || name == "" {
		return nil, ErrMalformedAction
	}

	return &Action{ns, name}, nil
}

// parseArgs collects the child elements of the action element.
func parseArgs(r io.Reader, action *Action) (map[string]string, error) {
	actionName := xml.Name{Space: action.Namespace, Local: action.Name}
	args := make(map[string]string)

	d := xml.NewDecoder(r)
	depth := 0
	var v strings.Builder
	for {
		token, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
				v.Reset()
			} else if t.Name == actionName {
				depth = 1
			}
		case xml.CharData:
			if depth > 1 {
				v.Write(t)
			}
		case xml.EndElement:
			switch depth {
			case 0:
			case 1:
				return args, nil
			case 2:
				args[t.Name.Local] = v.String()
				v.Reset()
				depth--
			default:
				depth--
			}
		}
	}
}

type Response struct {
	Action *Action
	Args   map[string]string
	Error  *Error
}

type arg struct {
	Name, Value string
}

const responseTemplate = `<?xml version="1.0" encoding="utf-8"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/" s:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/">
  <s:Body>
  {{- if .Error }}
    <s:Fault>
      <faultcode>s:Client</faultcode>
      <faultstring>UPnPError</faultstring>
      <detail>
        <UPnPError xmlns="urn:schemas-upnp-org:control-1-0">
          <errorCode>{{.Error.Code}}</errorCode>
          <errorDescription>{{.Error.Description}}</errorDescription>
        </UPnPError>
      </detail>
    </s:Fault>
  {{- else }}
    <u:{{.Action.Name}}Response xmlns:u="{{.Action.Namespace}}">
    {{- range .Args }}
      <{{.Name}}>{{escape .Value}}</{{.Name}}>
    {{- end}}
    </u:{{.Action.Name}}Response>
  {{- end }}
  </s:Body>
</s:Envelope>
`

var responseTpl = template.Must(template.New("response").Funcs(template.FuncMap{
	"escape": func(s string) (string, error) {
		b := new(strings.Builder)
		err := xml.EscapeText(b, []byte(s))

		return b.String(), err
	},
}).Parse(responseTemplate))

// StatusCode returns the HTTP status to send the response with.
func (resp *Response) StatusCode() int {
	if resp.Error != nil {
		return http.StatusInternalServerError
	}

	return http.StatusOK
}

// WriteTo writes the SOAP envelope. Arguments are written sorted by
// name.
func (resp *Response) WriteTo(w io.Writer) error {
	args := make([]arg, 0, len(resp.Args))
	for k, v := range resp.Args {
		args = append(args, arg{k, v})
	}
	sort.Slice(args, func(i, j int) bool { return args[i].Name < args[j].Name })

	return responseTpl.Execute(w, struct {
		Action *Action
		Args   []arg
		Error  *Error
	}{resp.Action, args, resp.Error})
}
