// Package pipetext converts pipetext markup into terminal control sequences.
//
// Markup is plain text with directives embedded in it. Directives start with a sentinel, '|', followed by a single
// character for type. Text that contains no directives comes out unchanged.
//
// Styles (each toggles on and off):
//    |+ bold         |. faint        |~ italic       |_ underline
//    |@ blink        |i inverse      |x crossed out
//
// Foreground colours, uppercase is the bright variant:
//    |k black  |s smoke  |r red  |g green  |y yellow  |b blue  |m magenta  |c cyan  |w white  |n normal
//
// Cursor and screen:
//    |! clear screen  |^ up  |v down  |> forward  |< back  |h hide cursor  |H show cursor
//
// Payload directives:
//    |#RRGGBB        24 bit colour
//    |pNN            8 bit palette colour
//    |U+XXXXXX       unicode code point, the + is optional
//    |[name]         emoji by name or abbreviation, |[bell], |[row,col], |[Ns] and |[Nms]
//    |(name)         render a variable, |(name=value), |(name+=value), -=, *= and /= update it
//    |(#name)        use a variable as a repeat count
//    |{text}         center text between the current column and the end column
//    |]NN            set the end column
//    |;              pad with spaces up to the end column
//    |\x             escaped character (\a \b \e \f \n \r \t \v \~ \( \))
//
// Repeats: |N followed by a character writes it N times, and |N~pattern~ renders pattern N times. Counts above
// Options.MaxRepeat are left as text. A render can start at most Options.MaxNested nested pattern and variable renders.
//
// Box drawing: |o, |- and |= switch to ascii, single and double line boxes, |O switches back. While a box mode is on,
// the characters [ ] { } - ! > < + v ^ are drawn as box pieces.
//
// Backgrounds: when ampersand mode is on (|& toggles it), '&' is a second sentinel for background colours:
//    &w &c &m &b &y &g &r &k (or &s) &n, &#RRGGBB and &pNN
//
// Unintended uses of either sentinel can be escaped by doubling them. Anything that is not a valid directive is
// written out as is; rendering never fails.
package pipetext
