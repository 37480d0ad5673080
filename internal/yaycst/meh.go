package yaycst

// Reformat runs the full lenient pipeline over source: parse loosely,
// canonicalize widths and comment alignment, and format back to
// strict YAY text. This is what backs the CLI's default rewrite mode,
// as opposed to the strict round-trip through yayparse and yayenc.
func Reformat(source string, wrap int) (string, error) {
	doc, err := Parse(source)
	if err != nil {
		return "", err
	}
	Transform(doc, wrap)
	return Format(doc), nil
}
