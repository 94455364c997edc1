package diagfmt

// PrettyOpts управляет человекочитаемым выводом диагностик.
type PrettyOpts struct {
	// Color включает ANSI-подсветку severity.
	Color bool
	// Context — печатать ли строку исходника с подчёркиванием.
	Context bool
}
