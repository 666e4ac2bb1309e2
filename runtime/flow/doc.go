// Package flow implements the request-scoped Context shared by a host
// application and its extension modules.
//
// Core code (empty module stack) owns core attributes and reads module
// metadata by qualified key, for example "audit.logged". Module code runs
// with its name on top of the stack, may not touch core attributes, and
// addresses its own metadata by plain field name:
//
//	fc := flow.NewContext(map[string]interface{}{"user": "alice"})
//	_ = fc.RunInModuleScope("audit", func() error {
//	    return fc.SetMetadata("logged", true) // stored as "audit.logged"
//	})
//	logged, _, _ := fc.Metadata("audit.logged")
package flow
