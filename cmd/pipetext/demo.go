package main

type demoLine struct {
	reset bool // start from a fresh state, as a new speaker would
	paint bool // render with ampersand mode on
	text  string
}

var demoLines = []demoLine{
	{reset: true, text: "Alice says, '|yHello world!|n'"},
	{reset: true, text: "Bob says, '|mOh.. hi Alice! |&|g&rAnd goodbye world time to exit!&n|n'"},
	{reset: true, paint: true, text: "Carol says, '|W&gHey Alice. Bob, you are so melodramatic. Let's transact later.&n|n'"},
	{reset: true, text: "Check = |G|U+2714|n, Cross = |R|U+274C |n"},
	{text: ""},
	{text: "|-[|37-]"},
	{text: "|]38!|{pipetext}|;!"},
	{text: "!|{box drawing demo}|;!"},
	{text: "{|37-}|O"},
	{text: "terminal size |(width)x|(height)"},
	{text: "|(i=0)|5~|c[|(i+=1)|(i)]|n ~"},
	{text: "|[check mark] |[thumbs up] |[rocket] |[smi f w he e]"},
	{text: "|+bold|+ |.faint|. |~italic|~ |_underline|_ |iinverse|i |xcrossed|x"},
	{reset: true, text: "|#FF8000rgb |p2Apalette|n |&&#0000FFbackground&n"},
}

// demo renders the demo lines through the shared session
func (a *app) demo() error {
	for _, line := range demoLines {
		if line.reset {
			a.session.Reset()
		}

		a.stats.Input(line.text)

		var err error
		if line.paint {
			err = a.session.Paint(a.out, line.text)
		} else {
			err = a.session.Write(a.out, line.text)
		}

		if err != nil {
			return err
		}
	}

	return nil
}
