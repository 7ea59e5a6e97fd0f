// Zip archive of xml/ in the layout statik emits, registered with
// statik/fs. Rebuild it with go generate after editing xml/; the test
// checks it still matches.

package scpd

import (
	"github.com/rakyll/statik/fs"
)

func init() {
	data := "PK\x03\x04\x14\x00\x00\x00\x08\x00\x00\x00!Xc\xd0T\xdf\xa9\x04\x00\x00\\9\x00\x00\x0f\x00\x00\x00AVTransport.xml\xe5[\xdfo\xa38\x10~\xef_\x11\xe5=\x9bV\xda\x87\xd3\x8af\xc5&\xa8B\x97\x1f\x1c\xa1]\xed\x13r`\x9a\xf5-\x18d\x9bn\xfb\xdf\x9f!\xa1!@\xd8$\xb5\xe1\x94\xbc\xb4063\x1f\xdf\x8c\xc7c\xe3h__\xc3\xa0\xf7\x02\x94\xe1\x88\xdc\xf7\xef>\xdd\xf6{@\xbc\xc8\xc7d}\xdfO\xf8\xf3\xe0\xaf\xfe\xd7\xd1\x8d\xc6\xbc\xd8\xef\x89\xae\x84	)%_\x98\xf7\x13B\xc4\x06IL\xe2AD\xd7_\x18\xd0\x17\xec\xc1\xe0np\xdb\x1f\xdd\xf4z\x1a\x8b\xc1{\xda\xe8M\xef\x85$D\xffFtt\xa7\x0d7\x17[!&\xe2\xfaV\x08\xb3\x8b\xf4\xc9a\xe9Q\x0dy\\\\N1\xe3\xdb\x876\x82\xcd\x8d\xb8%(\x84\xd1\x12\xb8\xfe\xe4PDX\x1cQ\xfeh\x9b\xda0\x93\xe7\x9d\x10]'!\x10\xbeS\xb3'\xde\x89r\x85&a\x1c\x11\x0f\xcc\xc9\xbe\xa6\xac\x87\x8f)l@`\xa2\x0dww\xc5>\x14\x02\xc4\xc1_r\xf1\xf7	Q\x8cV\x01\x8ctW\xb7\x1f\\\xe7\x87e\xb8E\x03\xb5}w(\x87U\x98\x0d\xc8\xc7	\xa5\xa2\xa1\xc2\xc1\x07\x91\x97\xd8U\x04y\x06\x1cM\x10G\xea\xa0\xef,\x9c\xfa\n;I!\x18\x87\xc5h\xac\x0d\xcd\x07\xe03\xf012\xc9st\xbdQ9\xa7\xc2	\xde/\xd6\x88;J\xf8I\xc0\xe7I\xb8\x02\xbax\xceUKE\x9c9m\x92P\x94b\x91\n{\x1b\xee%\x03]$\x81S\x91\xff\x9f\xb2\xc0\xc7\xb0\x9f\x9f\x06\x9a\xc3\x1c^\xa5\x93\x9e\xeaTJ\xfc\x16\xb4\x12\xd6\xab\xe0\x151o\x05\xe8-\x1dQI(\x15\x7f\xaav%\xb2\xcb\x92G\x14\xad!\xb7 \x15\xba\x0d^D}\x05\xe07\x8aUB\xffN1\x87TU\"7\xb3\x17)\xd9\xb3\xd1\xde\xa4\xfd\x1e\xb3\xd7=qo\xb3\xf2;\x1b\x99V\xa9\xbe.\xabV\x0e_r\xacVt\xabx\x81e\x0c\xe0\xab\x81\x9d\xa6\xb8\xad\xfa\xf6F\x97\x151\x9c6\\\xf7\xe0\xca\nW\x15\xb5\xe5V\xb1|\xb0*\x0b\xe2\x92\x01\xf9\xe0\x95T8E\xf0\x8aj\x9bL\xb7\xec\xb2\xb2\x88[~MiC\xe0\xe0P\xeeDa\xa7B\xfc\x02\xa9\xe2<\x7fH\x86\xad\xaf\x98t\xd8Bg\x14$\\%l\xc1\xcc8J\x08WBw\xa6\x19\xa8:\xc6\xe5C\xcf)\xff0\xf4\xf3'\xb8	\xa4;\xa2c\x14\xa3\x15\x0e\x84u`\xd7;\xcd\xe5k3\xb9\x89Wx\x95aqQ\xb3D\x93\x9d\x80\xc5rD\x1d\xfe\xca*M\x01\xfa\x7f\x12$\x82\xf0m\x16\xf9\xe58\x94\xfa\x12\xfbf:X\xab-\x81sL\xd6\xd7>\xd6\x04\xff*j\x85\x9dn\x85\xf1\xa9\x02x%:\xdb\x0c\xce\xf2\x12T\xcf\xba]q\x88\xd6\x12 \xc7\xd1U\x92[\xf2\xb3H\xdf\xf1E{\xf4L^\xd2\x94q\xd1\xbc4\"\xff\xf3\xae\xcd\x89\xa0;\xdc\xb4\xb1P\xc2\xe0\xa2]y\xee\xd0\x07\xf8u\xd1\xbc4\"\x7f$\xb8y\xedv>\xe6\x94X\x05\xe5\x86#\x9a@%\xe6\xdc\x80\xec\xf8\xcb\xaf\xf3Vm{\xec&3\xe0\xec\xb4k\xach\xb1\xc7\x80\xf8\xc6\x8b\xd0\xca\xee\xfb$\xea\xef\x07o\xd3\xbe\xbe\xe6#\x8e\x9c\xb7\x18F\x8cSQU\x0bNr\xc1{\xa0\x07A\xf4\x1b\xfc'\x14$P\x0e\xf6B\xd3h\xe9,,\xcb\x10\xb1\xb7'=\xd0\xd9\x9a\xea?\xcc\xf9\xc3q\x9d\x1d[\x9f/M\xc7\\\xcc\x8f~\xc4\xd2\x1f\x97\xc6\xc4M\xcd|\xd3\xc7\x7f\x1f\xf7\xd0|\xe1\xce\x8c\x89\xa9\xbb\x96m,\x8d\xb9S\xff\xd4\xbe\xb4\xe8FV\x8d\x82\xb3\xfdT\xfe\x80!\xd1Q\x8b#\xe90l{a\xbb\x8b\xf1\xf8\xd1\xb6\x0f\xf9U\x19\x19\x07>\xca*\xa2d\xbe\x98\x1bG\xc6\x88\xe1|_\xd8\x07\x18T\xc6F\xedW^e\\8\xae9\xb3\xa6\xc6L\x0c\x81\xf6\xfd\xde\xb8\xe3s\xca+K\x83R\xb7y\xd3*\x90\xca\xd2\xfcD\xcf\xfb\xf0\x8c\x92\x80\xe7\xee\xb5g\xfaT\xf4*\nO\x8f\x91\x8d\x92cF\x8cmX\x86\xee\xb8\x07G\x98\xfa|Z(\xa4\x15\x8d\x99\xbbN\xf2A\xcd\xd9\x89\x8b\xcc	\x87wx.\xf2u\x9b\xf6[[\xcd;\xe5\xb3\x97\xf5\xc6\x13\xfc\xf9\x0fT\xdb\x88\xac\x8b\xe9!\xc4\x04\x87I\xb8=\x14\x9e]\x16\x1a\xd1k&\xc9\x8e\x91\xbf\x96\x1a\x19\x878m\xc9\xfe\xd7\xfa\xa1`KV\xdc\xd5|\xc1\xbf\xb6\xb7\xaf?\x12\xd0\xd6\xc4\xd7pL\xb7-\x08\x0dg\x0bZ\x85P\xfd\xd9\x83j\xeb\x8d\xbf\xb9h\xd7xG\xfc\xd7\x1d\xce\xed\x18@GL\xd4\x9f\xceh7\"jOZt\xc2B\xe5\xe4A=\x8a\xea\x04!\x8d\x84\xee\x10\x1c\xf7\xc1K\xb2'\xde\x80\x95`L\x11\xe3\xe3\x9f\xe9\xa4\xd7v\x18\xd6ma*\xaaF\xf5oK\xd71gGnP\xd8\xc6\xb4\xa1\xb7\xb2\xa2\xf5\xc0\xfehWN9\xb4\xd9\xdeX\xb8\xd5\x00\x10\xa2\xea\x06\xac\x10z\xb1?\xba\xf9\x0fPK\x03\x04\x14\x00\x00\x00\x08\x00\x00\x00!X=\x15G[_\x02\x00\x00;\x11\x00\x00\x15\x00\x00\x00ConnectionManager.xml\xc5W\xdfo\xda0\x10~\xe7\xaf\x88\xf2\xce\x02\xd2\x1e\xa6*M\xc5hW\xa1\xad*j)\xd2\x9e\x90\xe7\x1c\xe059G\xb6\x03\xeb\x7f\xbf\x83\x10%\x81\xc0\x82p\xd8\x0b\xb2\xbf\xdc\x8f\xcfwg\xdf\xe1\xdf\xfd\x89#g\x05J\x0b\x89\xb7n\xffS\xcfu\x00\xb9\x0c\x05.n\xdd\xd4\xcc\xbb_\xdc\xbb\xa0\xe3k\x9e\x84\x0e\x89\xa2&T\xe1\x8d\xe6K\x88\x99\xee\xa6	&]\xa9\x167\x1a\xd4Jp\xe8\xf6\xbb=7\xe88\x8e\xaf\x13\xe0\xd3\xcc\xeefOH\xcc~K\x15\xf4}/[\xec@\x81\xb4\xee\x11\xb8]l4\xbd=U\x9fqC\xcb\x1fB\x9b\x9dR\x06d\x1b\xda\"\x8b!x\x043V\xd2H.\xa3\x11\xce\xa5\xefm\xd1\\\x84\xa9E\x1a\x03\x9a\xc2H\x05.\xa0\xdc\xdc\xabL\x15\x87\xaa\x95\xed\xd7P(\xc8\xdc\xcb\xd4\xf8^\xb1-\x0b)\x88\x98\x81\xf0\xd5\xd0\xef\x94)\xc1~E\xb9\xc9*\xc9Z\xc1\x82\x9fwH\xf0\x14g\x81\xefv\x19\x93\xc1\xcb\xf8\x16H)}^9\x7f\xc7\x929L\x95\"\xb5\xa1D\xcc\xe8\x8e\xee\xf5\xa5I=a\xec\xc2H\xd5\xb3\xfd\x9f\xd1\xb2p\x07\xca\xa79\x19-\x81g\x05k0\x1b\xbc<\xce&?\xc7\x0f\xb3\xaa\x0b\xab\xb7\xe1\x85\xeb\x7f\xd0>7\xc9%\xde;\xe3V	\x0f\xa6\x13\xc5P'R\x99\xf6\x88\xef9\xb1z\x80\xe3\xef\xaf=\xfe->\x9fc\x00U\xd4\xe3\x13C\xb6\x00\xd5\xd69j\x1c\xb5x\x98\xf6\xea\xa9\xc5\x0b|\x9f\x13j\x8b{\xc9\x81\xdd>LVR\xbb\xfd\xa56\xe2\xb9\x1f\xdbm&_\xe7_\xfd\xddp\xb7u0)\xac\xfb\xba\xec\xd1\xd1\x80\xe1\xc3\x8a\xac\xd2\x8c\xf8\x01\xda\xad6\xa9\xba\xe9\xa7\xd2\x9eBf\xd8\xe4#\x81@\x1bE\xd3'\x85'\x07v\x04\xf5\xe1\xf9\xcecp0\xcd\\\xd7\x7f\x83\x89\xc62\x07\x94{\x14N\x96\xd19L6\xf5\x1fEr\x0d\xe1\x94E)\xec\x8f\x14\xa5O\xc1\xf3w\xaa\xa72pD\x8e\x08\x19\xa2\xfdM\xaa\x98\x99'\xa1\xe9\x97/\x9b\xa9\x8eP\xa7\xf3\xb9\xe0\x82\xf4\xbf2\x0c\xd7\"4\x0dU\xdf\x90n\xcf6r\xc3%\xa3\x88DM\xd5\xdeQ\xae\xb1^\xb8\x8a\x96\xefX\x1b\xe9\xabmT\xd7\xac\xa4#\xef\xb4\xc5\x12\x1aa\xb2y/\x9b$\xe695Ge\xaf\x91\x97\xeb=0\xcd\xaac\xbf\xf3\x17,\xc4\xe76\x19\x9c\x18f\xafE\xa1\xe6\x0f\xc0\x99\xae	:\xec|\x04\xf2$\x0c:\x7f\x01PK\x03\x04\x14\x00\x00\x00\x08\x00\x00\x00!X\x83F\x0fGR\x02\x00\x00R\x13\x00\x00\x14\x00\x00\x00RenderingControl.xml\xedWMo\xa30\x10\xbd\xe7W \xee,I\xb5\x87UE\xa9\xaa\xa6[UjWU\x1bE\xea)raJ\xbd26\xb2M\xb6\xf9\xf7;|\x05\x07HwQH\xa4\xa8\xb9$\x9e\xb1=\xf3f\xfcx`\xef\xf2#f\xd6\x12\xa4\xa2\x82_\xd8\x93oc\xdb\x02\x1e\x88\x90\xf2\xe8\xc2N\xf5\x9b\xf3\xc3\xbe\xf4G\x9e\n\x92\xd0\xc2\xa5\\\xa1W\xf2s\x15\xbcCL\x94\x93&<q\x84\x8c\xce\x15\xc8%\x0d\xc0\x998c\xdb\x1fY\x96\xa7\x12\x08\xe6E\xdc\xccFOL~\x0b\xe9O<\xb7\x18\x94N\xcaq<Fg>\xc8v\xba\x8d\xad\x1e	4\x0e\xef\xa9\xd2\xe5\xa6\xc2Q\x18hr\x12\x83\x7f\x0bz.X\x1a\x83\xe7\xe6v5Id\x84N\xae\xeb\xed\x1b\xee\xdaU\x05\xba\xe3J\x13\x1e\xc0\xddt3R\xbe\"\xa4\x12\x8a\xe4\x94{nm\x99k$0\xa2!|\xd6\xf8;'\x92\x92W\x06\xfe\xd5\xe2\xea\xe9v1{y\xbcY\x98	:\xd7\xd6(\xdd6\xccO\x90_\xbf\x13\xce\x81\xed	\xf6:\xfa\xb0\x98S)q\xa2\xeb\xe8\x1a\xc8E\xaa{A\xafB\xf6\x85[{\x0c\xc6\xb9&\xe5:\xf9\xf7|\xe2\xdf1\xf2o\n\n\xd1\x84\xff\xc1\xbf\x9e\xc8\x0fL?\x94\xbf\x87T\x9f\xc8wT\xe4+\xc5\xaf}p\x0d\xdc}\xa5\xaf\x08x8\xe1;1\xef\xd8\x98W\xca\xde?\x99\xd7\x13\xf7A\x89\x97-~\x94\xa0@\xab/L\xbeBB\x8a>\xfcBOV\xf3\xa0b\xd2\x0c}0Ya\x88\xb0H\xfeu\x8f\xb7n\xfe\x9e\x90\x9b	\x86>\xd9j\\\xcdz\xe5%1O0\xab\xa3{\xca\xcch)\xe0\xe1\xcd\x12\xa3\xe2]\x93\x0b{\x93\x16\x9d\xdf\xd8!\xd1d\xb6J\xc0O\xe9\x196\xa2\xb2\xd6|aL\xfc\xc1o<\xc2Rx\"<2\x8b\xc2k'\x8d\xd3\xb8\xbc\x81\xe6Cc\x92|\xe4\x9e\xc98\x9b.\x8dzZiH\xb2\xfbl\xfe_\xf7\xa4;[\xb6\xac\xd5\xd7>\x95w\xbcd\xd7\x95\xbe\n\xc1\x80\xf0f\xed;\xe7\xfcLV\xea\xecJK\xca\xa3]\x93\xaf@5\xb2\xdf\x13\xa5\xb3\xd7_\xb4\xb5\xeea2\xb7\xca\xeez\xfd\xf6\x01\xd0\xe0\\S\xa7\x8c)\xff\x01k\x04\xb9\xc9\x9an.\x99\xcf\xd8p\xf5m\x93F\xf3\x99\xfa\xbe\xcf\x06oS\xb8\x01{\xfc\x13eH\xc8\xd5\x14\xdeH\xca\xb2\x8f\x85\x1d\x9b\x8d\xae\xb6\x90\xa13HB\x7f\xf4\x17PK\x01\x02\x14\x03\x14\x00\x00\x00\x08\x00\x00\x00!Xc\xd0T\xdf\xa9\x04\x00\x00\\9\x00\x00\x0f\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\xa4\x01\x00\x00\x00\x00AVTransport.xmlPK\x01\x02\x14\x03\x14\x00\x00\x00\x08\x00\x00\x00!X=\x15G[_\x02\x00\x00;\x11\x00\x00\x15\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\xa4\x01\xd6\x04\x00\x00ConnectionManager.xmlPK\x01\x02\x14\x03\x14\x00\x00\x00\x08\x00\x00\x00!X\x83F\x0fGR\x02\x00\x00R\x13\x00\x00\x14\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\xa4\x01h\x07\x00\x00RenderingControl.xmlPK\x05\x06\x00\x00\x00\x00\x03\x00\x03\x00\xc2\x00\x00\x00\xec	\x00\x00\x00\x00"
	fs.Register(data)
}
