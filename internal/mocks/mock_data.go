// Package mocks provides small bundled datasets so the service can
// start with MOCKUP_MODE=true and no external data files. The samples
// are real excerpts, large enough to exercise every dashboard.
package mocks

import (
	"fmt"
	"os"
	"path/filepath"
)

const sampleIrisCSV = `SepalLength,SepalWidth,PetalLength,PetalWidth,Name
5.1,3.5,1.4,0.2,Iris-setosa
4.9,3.0,1.4,0.2,Iris-setosa
4.7,3.2,1.3,0.2,Iris-setosa
4.6,3.1,1.5,0.2,Iris-setosa
5.0,3.6,1.4,0.2,Iris-setosa
7.0,3.2,4.7,1.4,Iris-versicolor
6.4,3.2,4.5,1.5,Iris-versicolor
6.9,3.1,4.9,1.5,Iris-versicolor
5.5,2.3,4.0,1.3,Iris-versicolor
6.5,2.8,4.6,1.5,Iris-versicolor
6.3,3.3,6.0,2.5,Iris-virginica
5.8,2.7,5.1,1.9,Iris-virginica
7.1,3.0,5.9,2.1,Iris-virginica
6.3,2.9,5.6,1.8,Iris-virginica
6.5,3.0,5.8,2.2,Iris-virginica
`

const sampleQuakesCSV = `Date,Time,Latitude,Longitude,Type,Depth,Magnitude
01/02/1965,13:44:18,19.246,145.616,Earthquake,131.6,6.0
01/04/1965,11:29:49,1.863,127.352,Earthquake,80.0,5.8
01/05/1965,18:05:58,-20.579,-173.972,Earthquake,20.0,6.2
01/10/1966,13:36:32,-13.405,166.629,Earthquake,35.0,6.7
01/12/1966,13:32:25,27.357,87.867,Earthquake,20.0,5.9
02/15/1967,11:17:42,-13.309,166.212,Earthquake,35.0,6.0
03/22/1967,20:57:34,-56.452,-27.043,Earthquake,95.0,6.1
04/09/1968,02:45:00,38.143,-118.120,Earthquake,10.0,6.8
05/14/1968,19:36:55,-9.855,117.427,Earthquake,65.0,5.9
06/11/1969,13:18:01,36.132,-97.285,Earthquake,8.0,5.5
07/04/1970,04:53:11,-15.292,-173.428,Earthquake,22.0,7.1
08/19/1970,10:11:47,43.817,147.852,Earthquake,47.0,6.4
`

const sampleMarketCSV = `Date,Value,MovingAvg
2007-01-03,12474.52,12446.10
2007-01-04,12480.69,12451.80
2007-01-05,12398.01,12455.40
2007-01-08,12423.49,12458.30
2007-01-09,12416.60,12462.70
2007-01-10,12442.16,12467.90
2007-01-11,12514.98,12474.20
2007-01-12,12556.08,12481.60
2007-01-16,12582.59,12489.10
2007-01-17,12577.15,12496.40
2007-01-18,12567.93,12503.00
2007-01-19,12565.53,12509.90
2007-01-22,12477.16,12515.60
2007-01-23,12533.80,12521.70
2007-01-24,12621.77,12528.90
`

// MaterializeSampleData writes the bundled CSVs under dir and returns
// the paths to feed the dataset loaders.
func MaterializeSampleData(dir string) (iris, quakes, market string, err error) {
	if err = os.MkdirAll(dir, 0755); err != nil {
		return "", "", "", fmt.Errorf("failed to create mock data directory: %w", err)
	}

	files := []struct {
		name    string
		content string
		path    *string
	}{
		{"iris.csv", sampleIrisCSV, &iris},
		{"earthquakes.csv", sampleQuakesCSV, &quakes},
		{"dow_jones.csv", sampleMarketCSV, &market},
	}
	for _, f := range files {
		p := filepath.Join(dir, f.name)
		if err = os.WriteFile(p, []byte(f.content), 0644); err != nil {
			return "", "", "", fmt.Errorf("failed to write %s: %w", f.name, err)
		}
		*f.path = p
	}
	return iris, quakes, market, nil
}
