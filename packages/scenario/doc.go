// Package scenario loads and runs declarative expectation files.
//
// A scenario file (*.spec.yaml) names a recorded action result and a
// list of checks to apply to it:
//
//	name: created item points at its location
//	context: when calling CreateItem expected
//	result: records/create-item.json
//	checks:
//	  - family: created
//	    assert: location
//	    value: /items/5
//	  - family: json
//	    assert: path
//	    path: data.id
//	    value: 5
//
// The runner compiles each check into the corresponding fluent
// assertion from the check package, captures raised failures and
// reports per-check outcomes.
package scenario
