package workflow

// Template names.
const (
	ImplementTrait      = "implement-trait"
	AddAsyncSupport     = "add-async-support"
	HandleErrors        = "handle-errors-idiomatically"
	AddSendSyncBounds   = "add-send-sync-bounds"
	FixLifetimeErrors   = "fix-lifetime-errors"
	OptimizePerformance = "optimize-for-performance"
)

func init() {
	register(ImplementTrait, "Guide for implementing a trait for a type", implementTraitBody,
		Param{Name: "trait_name", Description: "trait to implement", Required: true},
		Param{Name: "type_name", Description: "type that implements the trait", Required: true},
		Param{Name: "crate_name", Description: "crate that defines the trait, e.g. std or serde", Default: "std"},
	)
	register(AddAsyncSupport, "Guide for converting a function to async", addAsyncBody,
		Param{Name: "function_code", Description: "current synchronous function", Required: true},
		Param{Name: "runtime", Description: "async runtime, e.g. tokio or async-std", Default: "tokio"},
	)
	register(HandleErrors, "Guide for idiomatic error handling", handleErrorsBody,
		Param{Name: "code", Description: "code that needs error handling", Required: true},
		Param{Name: "error_strategy", Description: "strategy, e.g. Result, thiserror or anyhow", Default: "Result and ?"},
	)
	register(AddSendSyncBounds, "Guide for adding Send and Sync bounds", sendSyncBody,
		Param{Name: "code", Description: "code that needs Send/Sync bounds", Required: true},
		Param{Name: "use_case", Description: "where the values cross threads, e.g. threading or async", Default: "async tasks"},
	)
	register(FixLifetimeErrors, "Guide for fixing lifetime compiler errors", lifetimeBody,
		Param{Name: "error_message", Description: "compiler error about lifetimes", Required: true},
		Param{Name: "code", Description: "code that triggers the error"},
	)
	register(OptimizePerformance, "Guide for optimizing Rust code", optimizeBody,
		Param{Name: "code", Description: "code to optimize", Required: true},
		Param{Name: "bottleneck", Description: "known bottleneck, if any"},
	)
}

const implementTraitBody = `
I need to implement the {{.trait_name}} trait for {{.type_name}}.

Use the documentation tools for current API details instead of memory.

1. Look up the trait.
   - Call get_item_docs with crate_name "{{.crate_name}}", version "{{.version}}", item_type "trait", item_name "{{.trait_name}}".
   - If it is not at the crate root, call list_modules on {{.crate_name}} to find its module and retry get_item_docs with module_path set.
2. Read what the docs require: required methods, supertraits and associated types.
3. Write the impl for {{.type_name}} following the documented signatures.
4. Explain the result and point out common mistakes for this trait.
`

const addAsyncBody = `
I need to convert this synchronous function to async on {{.runtime}}:

` + "```rust" + `
{{.function_code}}
` + "```" + `

Use the documentation tools for current {{.runtime}} APIs instead of memory.

1. Call get_crate_overview for {{.runtime}} at version {{.version}}.
2. For each type or function the conversion needs, call get_item_docs at version {{.version}}. Use list_modules first when you do not know its module.
3. Find the blocking calls and replace them with their async counterparts from the docs. Add .await where needed and check Send bounds on spawned futures.
4. Return the async version with a short explanation of each change.
`

const handleErrorsBody = `
I need idiomatic error handling in this code using {{.error_strategy}}:

` + "```rust" + `
{{.code}}
` + "```" + `

1. If the strategy uses a crate such as thiserror or anyhow, call get_crate_overview for it at version {{.version}} and get_item_docs for the macros or types you plan to use. Use list_modules to locate items that are not at the root.
2. Find every operation that can fail and every unwrap or panic.
3. Define the error type, propagate with ?, and attach context where it helps the caller.
4. Show how a caller handles the new errors.
`

const sendSyncBody = `
I need to add Send/Sync bounds so this code works with {{.use_case}}:

` + "```rust" + `
{{.code}}
` + "```" + `

1. Call get_item_docs for crate_name "std", version "{{.version}}", module_path "marker", item_type "trait" with item_name "Send", then again with "Sync".
2. Identify the values that cross thread boundaries and the types that are not Send or Sync. Use list_modules when a type's module is unknown.
3. Add the bounds and replace offending types, for example Rc with Arc or RefCell with Mutex.
4. Return the corrected code and explain why each bound is required for {{.use_case}}.
`

const lifetimeBody = `
I'm getting a lifetime error:

` + "```" + `
{{.error_message}}
` + "```" + `
{{if .code}}
Code:

` + "```rust" + `
{{.code}}
` + "```" + `
{{end}}
1. If the error names a library type or trait, call get_item_docs for it (version {{.version}}). If it is not found, call list_modules to find the module path and retry.
2. Explain the error in plain terms and which borrow outlives which.
3. Offer fixes: lifetime parameters, owned data or restructured borrows. Show corrected code.
4. Suggest how to avoid the same error next time.
`

const optimizeBody = `
I need to optimize this Rust code:

` + "```rust" + `
{{.code}}
` + "```" + `
{{if .bottleneck}}
Known bottleneck: {{.bottleneck}}
{{end}}
1. For the collections and runtimes involved, call get_item_docs or get_crate_overview at version {{.version}} and read the documented performance notes. Use list_modules to find items outside the crate root.
2. Look for extra allocations, needless clones, poor data structures and lock contention.
3. Propose changes grounded in the docs, with their trade-offs.
4. Return the optimized code and how to benchmark it.
`
