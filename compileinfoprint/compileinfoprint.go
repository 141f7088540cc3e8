// compileinfoprint is imported by the bcgrate commands for the side effect of
// printing the compileinfo to os.Stderr before any output is produced.
package compileinfoprint

import "github.com/carbocation/bcgrate/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
