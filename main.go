////////////////////////////////////////////////////////////////////////////////
// Incomefund: fixed income investment contract for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"incomefund/contract"
)

func main() {
	debug := true
	contract.InitState(debug)     // true = use MockState
	contract.InitSDKMocks(debug)  // enable mock payment rail
	contract.InitENVMocks(debug)  // enable mock env
}
