// pkg/rcmd/constants.go
package rcmd

const (
	// DefaultBinary is the R executable name resolved through PATH when no
	// explicit binary or R_HOME is configured.
	DefaultBinary = "R"

	// commentMarker introduces the trailing commentary section of
	// `R CMD config --all` output; parsing stops at the first line that
	// begins with it.
	commentMarker = "##"

	// diagnosticPrefix marks decoded stderr lines relayed from the R
	// subprocess.
	diagnosticPrefix = "> "
)

// configArgs is the fixed subcommand requesting every configuration
// variable R knows about.
var configArgs = []string{"CMD", "config", "--all"}

// Well-known configuration keys reported by R CMD config
const (
	KeyCC         = "CC"          // C compiler
	KeyCFlags     = "CFLAGS"      // C compiler flags
	KeyCXX        = "CXX"         // C++ compiler
	KeyCXXFlags   = "CXXFLAGS"    // C++ compiler flags
	KeyFC         = "FC"          // Fortran compiler
	KeyFFlags     = "FFLAGS"      // Fortran compiler flags
	KeyFLibs      = "FLIBS"       // Fortran runtime linker flags
	KeyBLASLibs   = "BLAS_LIBS"   // BLAS linker flags
	KeyLAPACKLibs = "LAPACK_LIBS" // LAPACK linker flags
	KeyLDFlags    = "LDFLAGS"     // linker flags
	KeyMake       = "MAKE"        // make program
)
