// SPDX-License-Identifier: MIT

package diffraction_test

import "github.com/katalvlaran/fraunhofer/phasor"

// phasorOrigin is the figure-centre origin used by the presentation layer.
var phasorOrigin = phasor.Point{X: 0.5, Y: 0.5}
