/*

Process of analysis

Assembly Text ->
	parse ->
Instruction Block (amd64) ->
	live ->
Liveness Records ->
	format ->
Report Text

Liveness records feed the register allocator,
which is the next stage of the backend.

*/
package compiler
