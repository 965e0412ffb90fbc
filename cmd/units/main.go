// Units converts values between unit expressions.
//
// Usage:
//
//	# Convert a value
//	units "10 km/h => mph"
//
//	# Several queries, one per argument or one per line of stdin
//	units "100 c to f" "1 atm in psi"
//	echo "50 kWh -> J" | units
//
//	# Show dimensions and conversion steps
//	units -d --debug "10 m/s^2 => mi/h^2"
//
//	# Load additional units
//	units --defs myunits.yaml "3 furlong => m"
//
//	# List known units
//	units list length -o yaml
package main

func main() {
	Execute()
}
