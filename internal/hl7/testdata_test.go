package hl7

const sampleMessage = "MSH|^~\\&|LAB|MAYO|EHR|CLINIC|20220802003337||ORU^R01|CTRL123|P|2.5.1\r\n" +
	"PID|1||M177323145^^^MAYO||Doe^John^Q||19000101|M|||100 Main St^^Rochester^MN\r\n" +
	"\r\n" +
	"OBR|1|B523004918|H823018568|^^^MPXDX^Orthopoxvirus DNA\r\n" +
	"OBX|1|CE|100434-0^Orthopoxvirus||Undetected\r\n" +
	"NTE|1|L|Non-variola Orthopoxvirus DNA is not detected  \r\n"
