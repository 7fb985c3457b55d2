package domain

// TargetKind classifies a compilable unit declared by a manifest.
type TargetKind string

const (
	TargetLib         TargetKind = "lib"
	TargetBin         TargetKind = "bin"
	TargetExample     TargetKind = "example"
	TargetTest        TargetKind = "test"
	TargetBench       TargetKind = "bench"
	TargetBuildScript TargetKind = "build-script"
)

// Target is one compilable unit. Path is the source file path relative to the
// directory containing the manifest that declares it.
type Target struct {
	Kind TargetKind `json:"kind"`
	Name string     `json:"name"`
	Path string     `json:"path"`

	// Harness reports whether the default test harness drives this target.
	// Only meaningful for test and bench targets; a harness-less target needs
	// its own entry point.
	Harness bool `json:"harness"`

	// ProcMacro marks a procedural-macro library.
	ProcMacro bool `json:"proc_macro,omitempty"`
}

// EntryPoint returns the placeholder source content that makes this target
// compile as an empty unit. Binaries and anything harness-less must link a
// real entry point; libraries may be empty.
func (t Target) EntryPoint(noStd bool) string {
	switch t.Kind {
	case TargetBuildScript:
		return "fn main() {}"
	case TargetBin, TargetExample:
		if noStd {
			return noStdEntryPoint
		}
		return "fn main() {}"
	case TargetLib:
		if noStd && !t.ProcMacro {
			return "#![no_std]"
		}
		return ""
	case TargetTest, TargetBench:
		switch {
		case noStd && t.Harness:
			return noStdHarnessEntryPoint
		case noStd:
			return noStdEntryPoint
		case t.Harness:
			return ""
		default:
			return "fn main() {}"
		}
	}
	return ""
}

const noStdEntryPoint = `#![no_std]
#![no_main]

#[panic_handler]
fn panic(_: &core::panic::PanicInfo) -> ! {
    loop {}
}
`

const noStdHarnessEntryPoint = `#![no_std]
#![no_main]
#![feature(custom_test_frameworks)]
#![test_runner(test_runner)]

#[no_mangle]
pub extern "C" fn _init() {}

fn test_runner(_: &[&dyn Fn()]) {}

#[panic_handler]
fn panic(_: &core::panic::PanicInfo) -> ! {
    loop {}
}
`
