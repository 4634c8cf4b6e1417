// The instructions below are documented both in prose and with Go-like
// pseudocode, following the VM's actual step semantics in package vm.
// vm.Execution.Step is the authoritative implementation; this is a reader's
// map of it.
//
// • MatchLiteral(text, success, failure)
//
//	if text matches at cursors.top():
//	    cursors.top() += len(text)
//	    pc = success
//	else:
//	    pc = failure
//
// Compares Text at the live cursor. Advances past it and branches to
// Success on a hit; leaves the cursor untouched and branches to Failure
// otherwise. Out-of-bounds comparisons are treated as a mismatch, never
// an error.
//
// • MatchRange(min, max, success, failure)
//
//	if cursors.top() < len(text) and min <= text[cursors.top()] <= max:
//	    cursors.top() += 1
//	    pc = success
//	else:
//	    pc = failure
//
// Tests exactly one code point against [Min, Max].
//
// • Begin(next)
//
//	cursors.push(cursors.top())
//	pc = next
//
// Pushes a speculative checkpoint.
//
// • Commit(next)
//
//	c := cursors.pop()
//	cursors.top() = c
//	pc = next
//
// Keeps the advance made since the matching Begin, discards the
// checkpoint.
//
// • Abort(next)
//
//	cursors.pop()
//	pc = next
//
// Discards the advance made since the matching Begin, restoring the
// pre-checkpoint cursor.
//
// • Jump(next)
//
//	pc = next
//
// Unconditional branch.
//
// • Invoke(target, success, failure)
//
//	frames.push({success, failure})
//	pc = target
//
// Calls a rule. The callee returns via RevokeSuccess or RevokeFailure.
//
// • RevokeSuccess
//
//	{success, _} := frames.top()
//	if len(frames) > 1: frames.pop()
//	pc = success
//
// • RevokeFailure
//
//	{_, failure} := frames.top()
//	if len(frames) > 1: frames.pop()
//	pc = failure
//
// The outermost (sentinel) frame is never popped, so frames is back at
// depth 1 when the VM halts.
//
// • Prepare(next)
//
//	nodes.push(Node{start: cursors.top()})
//	pc = next
//
// Reserves a partial node for the enclosing rule.
//
// • Consume(name, next)
//
//	child := nodes.pop()
//	child.name = name
//	child.stop = cursors.top()
//	nodes.top().children.append(child)
//	pc = next
//
// Finalizes the top partial node as a named child of the node below it.
//
// • Discard(next)
//
//	nodes.pop()
//	pc = next
//
// Drops the top partial node without finalizing it.
//
// • Expect(name, next)
//
//	if cursors.top() > offset:
//	    expectations.clear()
//	    offset = cursors.top()
//	if cursors.top() == offset:
//	    expectations.add(name)
//	pc = next
//
// Records a failure-diagnostic hint at the furthest cursor reached.
package inst
