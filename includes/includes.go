package includes

// ContentIncludes describes extra content injected into the converted
// document at fixed insertion points. Paths are forwarded to the
// conversion backend verbatim.
type ContentIncludes struct {
	BeforeBody []string
	InHeader   []string
	AfterBody  []string
}

func (includes ContentIncludes) Empty() bool {
	return len(includes.BeforeBody) == 0 &&
		len(includes.InHeader) == 0 &&
		len(includes.AfterBody) == 0
}

// Translate expands the include set into backend argument tokens:
// before-body includes first, then in-header, then after-body.
func Translate(includes ContentIncludes) []string {
	var args []string

	for _, path := range includes.BeforeBody {
		args = append(args, "--include-before-body", path)
	}

	for _, path := range includes.InHeader {
		args = append(args, "--include-in-header", path)
	}

	for _, path := range includes.AfterBody {
		args = append(args, "--include-after-body", path)
	}

	return args
}
