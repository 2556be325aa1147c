// Package protoclass emulates class based object orientation on top of
// map-backed dynamic objects. A Descriptor plays the role of a class:
//   - SubClass derives a new descriptor with its own constructor, public
//     members and private members; the parent chain is copied at derivation.
//   - Instance materializes an Object by instantiating the superclass first
//     and layering each level's public members over it, most derived last.
//   - Methods of a level are bound to that level's private Scope, which is
//     never reachable from the resulting Object.
//
// Overridden superclass methods cannot be called from an instance, and there
// are no protected members.
package protoclass
