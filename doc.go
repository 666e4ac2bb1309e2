// Package flowctx provides a request-scoped, namespace-isolated data
// container shared between a host application and independently authored
// extension modules reacting to lifecycle events.
//
// The host starts one flow per unit of work, emits events, and stops the
// flow at the end:
//
//	srv, _ := flowctx.New(flowctx.WithModules(auditModule))
//	ctx, _ := unit.Ensure(r.Context())
//	fc, _ := srv.Start(ctx, map[string]interface{}{"user": user})
//	_, err := srv.Emit(ctx, "after-auth")
//	final, _ := srv.Stop(ctx)
//
// Modules write their own namespaced metadata (fc.SetMetadata("logged", true))
// and can never modify core attributes; the host reads module data by
// qualified key (fc.Metadata("audit.logged")).
//
// See the runtime/flow package for the isolation rules and service/lifecycle
// for the single-active-context contract.
package flowctx
