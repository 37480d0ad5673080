// Package yaycst implements the lenient "MEH" pipeline: a loose
// concrete-syntax-tree parser that tolerates extra whitespace and
// preserves comments, blank lines, and key order; a width-aware
// transformer that canonicalizes the tree; and a formatter that
// serializes it back to strict YAY text.
//
// Grounded on spec.md §4.4 and, for the overall three-stage shape
// (parse loose -> transform -> format), on
// original_source/rust/libyay/src/meh.rs (which only carries the wrap
// budget constant and its env var resolution in the filtered
// retrieval; the CST shapes and algorithms below are built directly
// from spec.md §3 and §4.4).
package yaycst

// DefaultWrap is MEH's default line-wrap budget, in columns.
const DefaultWrap = 80

// ItemKind identifies the kind of a CST Item.
type ItemKind int

const (
	ItemBlank ItemKind = iota
	ItemComment
	ItemValue
	ItemProperty
	ItemArrayItem
)

// Comment carries a line's "# ..." text and, once the transformer has
// run, the column its '#' should be padded to.
type Comment struct {
	Text        string
	Align       int
	HasAlign    bool
	Standalone  bool // true if this is its own Item, false if attached inline to a value/property/array item
}

// ScalarForm distinguishes how a scalar was spelled in source, so the
// formatter can write it back in the same form. FormRaw text (numbers,
// keywords) is emitted exactly as written: Transform does not re-space
// integer grouping or otherwise canonicalize numbers.
type ScalarForm int

const (
	FormRaw      ScalarForm = iota // numbers, keywords: original text
	FormSingle                     // 'text'
	FormDouble                     // "text"
	FormBlock                      // ` block string
	FormBytesRaw                   // <hex>
)

// CstValue is the loose analog of value.Value: scalars keep their
// original source text (which Format writes back unchanged), and
// containers keep nested Items.
type CstValue struct {
	Form  ScalarForm
	Text  string   // raw text for FormRaw/FormSingle/FormDouble payload, hex for FormBytesRaw/inline bytes
	Lines []string // body lines for FormBlock / block bytes

	IsArray  bool
	IsObject bool
	Items    []*Item // element/entry items, for IsArray/IsObject (inline or, once ForceBlock, block)

	IsBlockBytes  bool // a ">" leader with continuation lines
	IsInlineBytes bool // a "<hex>" token

	// ForceBlock is set by Transform when an inline array, object, or
	// byte string's printed width exceeds the wrap budget: the
	// formatter then renders Items (for arrays/objects) or Lines (for
	// bytes, regrouped 16-bytes-per-line) as a block instead of inline
	// text.
	ForceBlock bool
}

// Key is a property key with the quoting flavor it was written in.
type Key struct {
	Text string
	Form ScalarForm // FormRaw (bare), FormSingle, or FormDouble
}

// Item is one element of a Document or Block's item list.
type Item struct {
	Kind ItemKind

	// ItemComment / inline comment attached to any kind.
	Comment *Comment

	// ItemValue: root scalar/container with no key.
	Value *CstValue

	// ItemProperty.
	Key      Key
	PropVal  *CstValue // nil if value is a Block (nested properties)
	PropBody *Block    // nested object/array/block-string/block-bytes continuation

	// ItemArrayItem.
	ArrVal  *CstValue
	ArrBody *Block

	Indent int
	Line   int
}

// Block is a nested sequence of sibling Items at one indent level.
type Block struct {
	Indent int
	Items  []*Item
}

// Document is the parsed CST root.
type Document struct {
	Root *Block
}
