package lumina

import (
	"net/url"

	"github.com/cowwoc/lumina/ir"
)

// Form builds the document representation of a request form: the target
// URI, HTTP method, content type and the inputs and responses the server
// declares. Build produces a plain node; encoding it is the caller's
// business. A built form round-trips through the reader: its link
// resolves and its inputs and responses are reachable state.
type Form struct {
	description string
	uri         *url.URL
	method      string
	contentType string
	inputs      []formInput
	responses   []formResponse
}

type formInput struct {
	name  string
	input *Input
}

type formResponse struct {
	code        int
	description string
}

func NewForm(uri *url.URL, method, contentType string) (*Form, error) {
	if uri == nil {
		return nil, &ValidationError{Name: "uri", Message: "may not be nil"}
	}
	if err := validateName("method", method); err != nil {
		return nil, err
	}
	if err := validateName("contentType", contentType); err != nil {
		return nil, err
	}
	return &Form{uri: uri, method: method, contentType: contentType}, nil
}

func (f *Form) WithDescription(description string) *Form {
	f.description = description
	return f
}

// WithInput declares a named input. Inputs render in declaration order.
func (f *Form) WithInput(name string, input *Input) *Form {
	f.inputs = append(f.inputs, formInput{name: name, input: input})
	return f
}

// WithResponse declares a server response. description may be empty.
func (f *Form) WithResponse(code int, description string) *Form {
	f.responses = append(f.responses, formResponse{code: code, description: description})
	return f
}

func (f *Form) Build() (*ir.Node, error) {
	if f.description != "" {
		if err := validateName("description", f.description); err != nil {
			return nil, err
		}
	}
	inputs, err := f.buildInputs()
	if err != nil {
		return nil, err
	}
	responses := f.buildResponses()

	var kvs []ir.KeyVal
	if f.description != "" {
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(MetaDescription), Val: ir.FromString(f.description)})
		// An array cannot carry metadata, so a described responses
		// list is wrapped in a state container.
		responses = ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString(MetaDescription), Val: ir.FromString("The list of responses that the form may return")},
			{Key: ir.FromString(MetaState), Val: responses},
		})
	}
	kvs = append(kvs,
		ir.KeyVal{Key: ir.FromString(MetaLink), Val: ir.FromString(f.uri.String())},
		ir.KeyVal{Key: ir.FromString("method"), Val: ir.FromString(f.method)},
		ir.KeyVal{Key: ir.FromString("contentType"), Val: ir.FromString(f.contentType)},
		ir.KeyVal{Key: ir.FromString("inputs"), Val: inputs},
		ir.KeyVal{Key: ir.FromString("responses"), Val: responses},
	)
	return ir.FromKeyVals(kvs), nil
}

func (f *Form) buildInputs() (*ir.Node, error) {
	var kvs []ir.KeyVal
	for _, in := range f.inputs {
		if err := validateName("input name", in.name); err != nil {
			return nil, err
		}
		node, err := in.input.Build()
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(in.name), Val: node})
	}
	if f.description != "" {
		kvs = append(kvs, ir.KeyVal{
			Key: ir.FromString(MetaDescription),
			Val: ir.FromString("The list of inputs that the form accepts"),
		})
	}
	return ir.FromKeyVals(kvs), nil
}

func (f *Form) buildResponses() *ir.Node {
	var elems []*ir.Node
	for _, resp := range f.responses {
		kvs := []ir.KeyVal{
			{Key: ir.FromString("code"), Val: ir.FromInt(int64(resp.code))},
		}
		if resp.description != "" {
			kvs = append(kvs, ir.KeyVal{
				Key: ir.FromString(MetaDescription),
				Val: ir.FromString(resp.description),
			})
		}
		elems = append(elems, ir.FromKeyVals(kvs))
	}
	return ir.FromSlice(elems)
}

// Input describes a single form input.
type Input struct {
	typ         string
	minLength   *int
	maxLength   *int
	optional    bool
	description string
}

func StringInput() *Input {
	return &Input{typ: "string"}
}

func URIInput() *Input {
	return &Input{typ: "uri"}
}

func (in *Input) MinLength(n int) *Input {
	in.minLength = &n
	return in
}

func (in *Input) MaxLength(n int) *Input {
	in.maxLength = &n
	return in
}

func (in *Input) Optional() *Input {
	in.optional = true
	return in
}

func (in *Input) Description(description string) *Input {
	in.description = description
	return in
}

func (in *Input) Build() (*ir.Node, error) {
	if in.minLength != nil && *in.minLength < 0 {
		return nil, &ValidationError{Name: "minLength", Message: "may not be negative"}
	}
	if in.maxLength != nil && *in.maxLength < 0 {
		return nil, &ValidationError{Name: "maxLength", Message: "may not be negative"}
	}
	if in.minLength != nil && in.maxLength != nil && *in.minLength > *in.maxLength {
		return nil, &ValidationError{Name: "minLength", Message: "may not exceed maxLength"}
	}
	if in.description != "" {
		if err := validateName("description", in.description); err != nil {
			return nil, err
		}
	}
	kvs := []ir.KeyVal{
		{Key: ir.FromString("type"), Val: ir.FromString(in.typ)},
	}
	if in.minLength != nil {
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString("minLength"), Val: ir.FromInt(int64(*in.minLength))})
	}
	if in.maxLength != nil {
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString("maxLength"), Val: ir.FromInt(int64(*in.maxLength))})
	}
	if in.optional {
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString("optional"), Val: ir.FromBool(true)})
	}
	if in.description != "" {
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(MetaDescription), Val: ir.FromString(in.description)})
	}
	return ir.FromKeyVals(kvs), nil
}
