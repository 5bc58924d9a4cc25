// Package units provides the energy, wavelength and angle conversions shared
// by the x-ray packages.
package units

import "math"

// KeVAngstrom is hc in keV·Å: wavelength(Å) = KeVAngstrom / energy(keV).
const KeVAngstrom = 12.398

// Degree converts degrees to radians.
const Degree = math.Pi / 180

// Wavelength converts a photon energy in keV to a wavelength in Å.
// Returns +Inf for non-positive energies.
func Wavelength(energyKeV float64) float64 {
	if energyKeV <= 0 {
		return math.Inf(1)
	}
	return KeVAngstrom / energyKeV
}

// Energy converts a wavelength in Å to a photon energy in keV.
// Returns +Inf for non-positive wavelengths.
func Energy(wavelength float64) float64 {
	if wavelength <= 0 {
		return math.Inf(1)
	}
	return KeVAngstrom / wavelength
}

// LineWidth converts a natural line width in eV, centred on energyKeV, to a
// width in Å: hc/(E-ΔE/2) - hc/(E+ΔE/2).
func LineWidth(energyKeV, widthEV float64) float64 {
	half := 0.5e-3 * widthEV
	return KeVAngstrom/(energyKeV-half) - KeVAngstrom/(energyKeV+half)
}

// EnergyFromLineWidth inverts LineWidth: given the width in Å of a line whose
// natural width is widthEV, it returns the line energy in keV.
func EnergyFromLineWidth(widthAngstrom, widthEV float64) float64 {
	if widthAngstrom <= 0 {
		return math.NaN()
	}
	half := 0.5e-3 * widthEV
	return math.Sqrt(half*half + 2*half*KeVAngstrom/widthAngstrom)
}
