// Package dispatch broadcasts named events to every loaded extension in the process.
//
// Extensions register a set of named handlers when they load. Each handler declares its
// parameter types with descriptors, so a broadcast can pick the right handler without the
// sender and the receiver sharing any compile-time types beyond the arguments themselves.
//
// # Matching
//
// For a broadcast of event E with arguments A1..An, an extension's handler matches when:
//   - its name equals E,
//   - it declares exactly n parameters,
//   - every parameter accepts the dynamic type of the matching argument, or the argument is nil
//     and the parameter is nullable (pointers, interfaces, maps, slices, funcs, channels).
//
// The first matching handler of every extension is invoked, in registration order. Extensions
// without a match are skipped; that is never an error. A handler that fails or panics does not
// stop the broadcast: the failures are joined and returned once every handler ran.
//
// # Usage
//
//	d := dispatch.New(logger)
//	_ = d.Register("custom-hats",
//	    dispatch.On1("OnAddHatsForCharacter", plugin.OnAddHatsForCharacter),
//	)
//	invoked, err := d.Broadcast("OnAddHatsForCharacter", instance)
package dispatch
