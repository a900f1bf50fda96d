package chain

// Chain words. Each one resolves through the registries, so extending the
// negation or no-op sets changes how they behave.

func (a *Assertion) To() *Assertion    { return a.Word("to") }
func (a *Assertion) The() *Assertion   { return a.Word("the") }
func (a *Assertion) And() *Assertion   { return a.Word("and") }
func (a *Assertion) Be() *Assertion    { return a.Word("be") }
func (a *Assertion) Been() *Assertion  { return a.Word("been") }
func (a *Assertion) Is() *Assertion    { return a.Word("is") }
func (a *Assertion) An() *Assertion    { return a.Word("an") }
func (a *Assertion) A() *Assertion     { return a.Word("a") }
func (a *Assertion) That() *Assertion  { return a.Word("that") }
func (a *Assertion) Which() *Assertion { return a.Word("which") }
func (a *Assertion) Does() *Assertion  { return a.Word("does") }
func (a *Assertion) Still() *Assertion { return a.Word("still") }
func (a *Assertion) Also() *Assertion  { return a.Word("also") }
func (a *Assertion) But() *Assertion   { return a.Word("but") }
func (a *Assertion) Of() *Assertion    { return a.Word("of") }
func (a *Assertion) Have() *Assertion  { return a.Word("have") }
func (a *Assertion) Or() *Assertion    { return a.Word("or") }

// Not negates the rest of the chain. Two negations cancel out.
func (a *Assertion) Not() *Assertion { return a.Word("not") }

// Never is an alias of Not.
func (a *Assertion) Never() *Assertion { return a.Word("never") }
