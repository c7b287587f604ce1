// Command splitter separates an IMU recording into its accelerometer and
// magnetometer halves.
//
// Every input line carries six values, "ax, ay, az, mx, my, mz". The first
// three land in acc_data.csv and the last three in mag_data.csv, both
// written next to the input file:
//
//	splitter ./flight-03/imu.csv
//	splitter validate ./flight-03/imu.csv
//
// Command wiring lives in package cmd.
package main

import "github.com/ginjaninja78/imu-csv-splitter/cmd"

func main() {
	cmd.Execute()
}
