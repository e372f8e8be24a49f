// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plate

// Rectangle corners extracted from the orthball_plate_v4.svg plate outline,
// one cutout per line as "x1,y1 x2,y2" in drawing units. The drawing uses
// matrix(1,0,0,-1,0.238,380.456), so Y grows downward relative to the
// physical plate.

// MXRects lists the MX switch cutouts, 39.684 drawing units square.
const MXRects = `
614.966,251.492 575.282,291.176
479.95,197.524 440.266,237.208
425.95,143.524 386.266,183.208
425.95,251.492 386.266,291.176
479.95,143.524 440.266,183.208
668.966,251.492 629.282,291.176
668.966,197.524 629.282,237.208
884.934,197.524 845.25,237.208
830.934,197.524 791.25,237.208
830.934,251.492 791.25,291.176
776.934,197.524 737.25,237.208
776.934,89.492 737.25,129.176
668.966,143.524 629.282,183.208
722.966,143.524 683.282,183.208
776.934,143.524 737.25,183.208
776.934,251.492 737.25,291.176
830.934,143.524 791.25,183.208
614.966,197.524 575.282,237.208
884.934,251.492 845.25,291.176
722.966,197.524 683.282,237.208
290.966,197.524 251.282,237.208
128.966,251.492 89.282,291.176
74.934,197.524 35.25,237.208
344.966,143.524 305.282,183.208
425.95,197.524 386.266,237.208
74.934,89.492 35.25,129.176
290.966,251.492 251.282,291.176
290.966,143.524 251.282,183.208
74.934,251.492 35.25,291.176
344.966,251.492 305.282,291.176
128.966,197.524 89.282,237.208
614.966,143.524 575.282,183.208
128.966,89.492 89.282,129.176
344.966,197.524 305.282,237.208
479.95,89.492 440.266,129.176
182.934,251.492 143.25,291.176
533.95,143.524 494.266,183.208
74.934,143.524 35.25,183.208
533.95,251.492 494.266,291.176
182.934,197.524 143.25,237.208
182.934,89.492 143.25,129.176
128.966,143.524 89.282,183.208
236.966,251.492 197.282,291.176
479.95,251.492 440.266,291.176
182.934,143.524 143.25,183.208
236.966,143.524 197.282,183.208
236.966,197.524 197.282,237.208
884.934,143.524 845.25,183.208
533.95,197.524 494.266,237.208
722.966,251.492 683.282,291.176
`

// ChocRects lists the Choc switch cutouts, 33.45 drawing units wide.
const ChocRects = `
902.399,128.895 935.848,89.774
1010.229,128.895 1043.678,89.774
956.399,128.895 989.848,89.774
794.371,128.895 827.821,89.774
848.399,128.895 881.848,89.774
`

// ThumbOutlines lists the rotated thumb-cluster cutouts as raw corner
// sequences. They are not converted or reported anywhere yet; the upstream
// drawing defines them with per-key rotation transforms that the flat
// rectangle pipeline cannot express.
const ThumbOutlines = `
568.927,105.498 588.774,71.134 554.41,51.286 534.563,85.651
629.631,125.25 643.179,87.95 605.88,74.402 592.331,111.701
695.369,127.56 655.685,87.876
348.857,104.367 329.01,70.003 363.374,50.155 383.221,84.519
290.553,126.518 277.005,89.219 314.304,75.67 327.853,112.97
224.815,128.829 264.499,89.145
`
