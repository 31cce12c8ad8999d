/*
Package vm implements a virtual machine for the LC-3, a 16-bit educational
instruction set: sixteen opcodes, a 64K-word address space, eight
general-purpose registers, a program counter, and a three-bit condition code
register, plus a small set of trap intrinsics for console I/O and halt.

# Machine #

An [LC3] is a single machine invocation: registers, memory, and a run flag.
It is created once, loaded with one or more images, and stepped or run to
completion. There is no persistence and no shared state between machines:
two [LC3] values can execute concurrently without interference, which is
what lets the test suite run its scenarios in parallel.

# Memory #

Memory is a flat array of 65,536 words. Two addresses, 0xFE00 and 0xFE02,
are virtual: reading the first (KBSR) polls an external [Terminal] for a
ready keystroke and deposits it at the second (KBDR) if one is available.
Every other address is plain storage. The [Memory] bus is the only path to
memory; this is what keeps the polling behavior out of instruction
semantics entirely.

# Execution #

[LC3.Step] fetches the word at PC, decodes it into an operation, and
executes it. Decoding and execution are deliberately separate: decoding
pulls bit fields out of the wire-format instruction word, and execution
applies those fields to registers and memory. RTI and RES are illegal by
definition, and their decoded operation always returns a fault. Trap
vectors are VM intrinsics rather than resident service routines: there is
no trap vector table in memory to jump through.

# Loading #

[Loader] reads a raw image, a big-endian origin followed by big-endian
words, and places it in memory starting at that origin. Multiple images
may be loaded before execution begins; later images overlay earlier ones.
*/
package vm
