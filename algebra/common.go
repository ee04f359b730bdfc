package algebra

import "fifi-core/numeric"

var intOne = numeric.NewInt(1)
var intZero = numeric.NewInt(0)
