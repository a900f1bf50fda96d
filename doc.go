// Package expect is a fluent assertion library.
//
// A statement starts with Expect and reads as a sentence:
//
//	expect.Expect(5).To().Not().Equal(4)
//	expect.Expect(list).To().Have().Length(3)
//
// Words such as To, Be and Have do nothing; Not and Never flip the
// expectation. A check that does not hold panics with a
// *chain.AssertionFailure carrying the rendered message. Inside tests, For
// reports through testing.TB instead:
//
//	e := expect.For(t)
//	e(resp.Status).To().Equal(200)
//
// Values reached through a proxy report the path to the failing field:
//
//	expect.WithProxy(parent, func(p *proxy.Node) bool {
//		expect.Expect(p.Get("son").Get("age")).To().Equal(5)
//		return true
//	})
//	// Expected son.age to strictly equal '5' (number) ...
//
// New checks, negation words and no-op words are registered with Extend,
// ExtendNegations and ExtendNOPs before the first assertion runs.
package expect
